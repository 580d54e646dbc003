package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/kvstore"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
)

// ErrNotFound is returned when no email exists under the requested id.
var ErrNotFound = errors.New("email not found")

const emailKeyPrefix = "email:"

// EmailKey returns the store key for an email id.
func EmailKey(id string) string {
	return emailKeyPrefix + id
}

// EmailRepository persists Email records in the key-value store under
// email:{id} keys, JSON-serialized.
type EmailRepository struct {
	store kvstore.Store
}

func NewEmailRepository(store kvstore.Store) *EmailRepository {
	return &EmailRepository{store: store}
}

// Save writes the full record under its key.
func (r *EmailRepository) Save(ctx context.Context, e *model.Email) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal email %s: %w", e.ID, err)
	}
	return r.store.Set(ctx, EmailKey(e.ID), string(data))
}

// FindByID returns the email stored under id, or ErrNotFound.
func (r *EmailRepository) FindByID(ctx context.Context, id string) (*model.Email, error) {
	raw, ok, err := r.store.Get(ctx, EmailKey(id))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	var e model.Email
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, fmt.Errorf("unmarshal email %s: %w", id, err)
	}
	return &e, nil
}

// List returns every stored email, urgent-priority records first, then by
// sent_date descending. Records with equal sent_date keep insertion order.
func (r *EmailRepository) List(ctx context.Context) ([]model.Email, error) {
	values, err := r.store.GetByPrefix(ctx, emailKeyPrefix)
	if err != nil {
		return nil, err
	}

	emails := make([]model.Email, 0, len(values))
	for _, v := range values {
		var e model.Email
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			return nil, fmt.Errorf("unmarshal stored email: %w", err)
		}
		emails = append(emails, e)
	}

	sort.Slice(emails, func(i, j int) bool {
		a, b := emails[i], emails[j]
		aUrgent := a.Priority == model.PriorityUrgent
		bUrgent := b.Priority == model.PriorityUrgent
		if aUrgent != bUrgent {
			return aUrgent
		}
		if !a.SentDate.Equal(b.SentDate) {
			return a.SentDate.After(b.SentDate)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	return emails, nil
}

// UpdateStatus sets the email's status and rewrites the record.
func (r *EmailRepository) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Email, error) {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Status = status
	if err := r.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateResponse overwrites the generated reply text; operators may edit it.
func (r *EmailRepository) UpdateResponse(ctx context.Context, id, response string) (*model.Email, error) {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.AIResponse = response
	if err := r.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteAll removes every stored email key and returns how many were
// deleted. Used only by the sample-data reseed.
func (r *EmailRepository) DeleteAll(ctx context.Context) (int, error) {
	emails, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(emails) == 0 {
		return 0, nil
	}
	keys := make([]string, len(emails))
	for i, e := range emails {
		keys[i] = EmailKey(e.ID)
	}
	if err := r.store.MDel(ctx, keys); err != nil {
		return 0, err
	}
	return len(keys), nil
}
