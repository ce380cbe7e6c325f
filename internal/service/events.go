package service

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/kamilio/song-builder-sub001/internal/domain"
	"github.com/kamilio/song-builder-sub001/internal/storage"
)

// publish broadcasts a studio event. Payload marshal failures are logged
// and swallowed; notifications are best-effort and never fail a request.
func (s *Service) publish(eventType domain.EventType, payload any) {
	if s.notifier == nil {
		return
	}
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Printf("ERROR: failed to marshal %s payload: %v", eventType, err)
			return
		}
		raw = data
	}
	s.notifier.Publish(domain.Event{
		Type:    eventType,
		Ts:      time.Now().UnixMilli(),
		Payload: raw,
	})
}

// notifyCapacity inspects a repository write error and, when the store
// rejected the write for capacity, tells connected clients out of band.
// The error is returned unchanged so callers still surface it.
func (s *Service) notifyCapacity(err error) error {
	if err != nil && errors.Is(err, storage.ErrCapacityExceeded) {
		s.publish(domain.EventTypeCapacityExceeded, map[string]string{
			"reason": "storage capacity exceeded, the last write was dropped",
		})
	}
	return err
}
