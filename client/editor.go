package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrSubmitInProgress is returned when Submit is called while an earlier
// submit is still running.
var ErrSubmitInProgress = errors.New("client: simpan sedang diproses")

// ErrEditorClosed is returned for actions that need an open editor.
var ErrEditorClosed = errors.New("client: form belum dibuka")

// FieldError reports a required field left blank.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s wajib diisi", e.Field)
}

// EditorState is the lifecycle of the create/edit form.
type EditorState int

const (
	EditorClosed EditorState = iota
	EditorOpen
	EditorSubmitting
)

// Editor drives one create/edit form for a collection. Opening loads a
// draft, Submit validates and writes through the Client, and a successful
// submit closes the form and reloads the owning listing.
type Editor struct {
	Client   *Client
	Resource string
	Listing  *Listing

	// Required lists field keys that must be non-blank before submit.
	Required []string

	mu    sync.Mutex
	state EditorState
	docID string
	draft map[string]any
}

func NewEditor(c *Client, resource string, listing *Listing, required ...string) *Editor {
	return &Editor{Client: c, Resource: resource, Listing: listing, Required: required}
}

// State returns the current lifecycle state.
func (e *Editor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// OpenCreate opens an empty form, optionally pre-filled with defaults.
func (e *Editor) OpenCreate(defaults map[string]any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = EditorOpen
	e.docID = ""
	e.draft = map[string]any{}
	for k, v := range defaults {
		e.draft[k] = v
	}
}

// OpenEdit opens the form pre-filled from an existing record.
func (e *Editor) OpenEdit(record Record) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = EditorOpen
	e.docID = record.DocumentID()
	e.draft = map[string]any{}
	for k, v := range record {
		if k == "id" || k == "documentId" {
			continue
		}
		e.draft[k] = v
	}
}

// SetField updates one draft field. Ignored when the form is not open.
func (e *Editor) SetField(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != EditorOpen {
		return
	}
	e.draft[key] = value
}

// Draft returns a copy of the current draft values.
func (e *Editor) Draft() map[string]any {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]any, len(e.draft))
	for k, v := range e.draft {
		out[k] = v
	}
	return out
}

// Cancel closes the form and drops the draft.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == EditorSubmitting {
		return
	}
	e.state = EditorClosed
	e.draft = nil
	e.docID = ""
}

// Submit validates the draft and writes it. While a submit is running,
// further submits are rejected so a double click cannot create two rows.
// On failure the form stays open with the draft intact; on success the
// form closes and the listing reloads.
func (e *Editor) Submit(ctx context.Context) error {
	e.mu.Lock()
	switch e.state {
	case EditorSubmitting:
		e.mu.Unlock()
		return ErrSubmitInProgress
	case EditorClosed:
		e.mu.Unlock()
		return ErrEditorClosed
	}

	for _, key := range e.Required {
		if isBlank(e.draft[key]) {
			e.mu.Unlock()
			return &FieldError{Field: key}
		}
	}

	e.state = EditorSubmitting
	docID := e.docID
	fields := make(map[string]any, len(e.draft))
	for k, v := range e.draft {
		fields[k] = v
	}
	e.mu.Unlock()

	var err error
	if docID == "" {
		_, err = e.Client.Create(ctx, e.Resource, fields)
	} else {
		_, err = e.Client.Update(ctx, e.Resource, docID, fields)
	}

	e.mu.Lock()
	if err != nil {
		e.state = EditorOpen
		e.mu.Unlock()
		return err
	}
	e.state = EditorClosed
	e.draft = nil
	e.docID = ""
	e.mu.Unlock()

	if e.Listing != nil {
		return e.Listing.Reload(ctx)
	}
	return nil
}

// Delete removes a record and reloads the listing. Callers confirm with
// the user first; the deletion itself is permanent.
func (e *Editor) Delete(ctx context.Context, documentID string) error {
	if err := e.Client.Delete(ctx, e.Resource, documentID); err != nil {
		return err
	}
	if e.Listing != nil {
		return e.Listing.Reload(ctx)
	}
	return nil
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}
