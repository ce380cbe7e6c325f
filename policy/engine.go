// Package policy evaluates whether an LLM-issued tool call may be
// applied to a script. The mutation engine already rejects malformed
// calls; the policy gate sits in front of it so a deployment can veto
// well-formed but unwanted edits (destructive tools, protected scripts)
// without touching code.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"
)

// Decisions returned by Evaluate.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a policy engine from rego policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.studio_policy.decision"),
		rego.Module("studio_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}
	return &Engine{query: query}, nil
}

// Evaluate checks one tool call. Input carries tool_name and args.
// Returns the decision (allow or block) and an optional reason.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (string, string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The policy is expected to define a default; treat silence as allow.
		return DecisionAllow, "default", nil
	}

	val := results[0].Expressions[0].Value
	if s, ok := val.(string); ok {
		return s, "", nil
	}
	if obj, ok := val.(map[string]interface{}); ok {
		decision, _ := obj["decision"].(string)
		reason, _ := obj["reason"].(string)
		if decision != "" {
			return decision, reason, nil
		}
	}
	return DecisionAllow, "unexpected return type", nil
}

// DefaultPolicy allows every builtin edit. Deployments point
// STUDIO_POLICY_FILE at a stricter module to veto tools, e.g.
//
//	decision := "block" if input.tool_name == "delete_shot"
const DefaultPolicy = `
package studio_policy

default decision := "allow"
`
