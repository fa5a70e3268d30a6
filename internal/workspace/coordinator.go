// Package workspace implements the client-side session core: the note list,
// tag catalog, list filter, and editor draft for one logged-in user, kept
// mutually consistent while every read and write crosses the network.
//
// The server is the source of truth. The workspace never patches its caches
// in place: after every mutation the list and the tag catalog are re-fetched
// wholesale, and concurrent refreshes are reconciled with a last-request-wins
// sequence number rather than cancellation.
package workspace

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"notewell/internal/adapter"
	"notewell/internal/logger"
	"notewell/models"
)

// Coordinator owns the workspace session state and is the only component
// that talks to the gateway. All exported methods are safe for concurrent
// use; gateway calls are issued outside the internal lock so a slow request
// never blocks filter changes or draft edits.
type Coordinator struct {
	gateway adapter.NoteGateway
	logger  *logger.Logger

	mu      sync.Mutex
	filter  FilterState
	list    noteList
	catalog tagCatalog
	buffer  editorBuffer
	saving  bool
}

// NewCoordinator constructs a workspace over gateway. The buffer starts in
// create mode and the filter starts unfiltered; call Mount to populate the
// list and tag caches.
func NewCoordinator(gateway adapter.NoteGateway, logger *logger.Logger) *Coordinator {
	return &Coordinator{
		gateway: gateway,
		logger:  logger,
		filter:  Unfiltered(),
	}
}

// Mount performs the initial load: one unfiltered list refresh and one tag
// refresh. A tag refresh failure is non-fatal and only logged; a list
// refresh failure is returned.
func (c *Coordinator) Mount(ctx context.Context) error {
	if err := c.RefreshNotes(ctx); err != nil {
		return err
	}

	if err := c.RefreshTags(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("initial tag refresh failed")
	}
	return nil
}

// Notes returns the cached note list for the current filter.
func (c *Coordinator) Notes() []models.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.snapshot()
}

// Tags returns the cached distinct tag set.
func (c *Coordinator) Tags() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.snapshot()
}

// Filter returns the active filter state.
func (c *Coordinator) Filter() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Draft returns the current editor draft fields.
func (c *Coordinator) Draft() models.NoteDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.draft()
}

// Editing reports the bound note ID and whether the buffer is in edit mode.
func (c *Coordinator) Editing() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.boundNoteID, c.buffer.editing()
}

// SetDraft replaces the user-editable draft fields without touching the
// bound note ID or the filter.
func (c *Coordinator) SetDraft(title, content, tags string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buffer.title = title
	c.buffer.content = content
	c.buffer.tags = tags
}

// SelectNote loads note into the editor buffer, entering edit mode. The
// filter is left untouched.
func (c *Coordinator) SelectNote(note models.Note) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buffer.loadFrom(note)
}

// NewNote resets the buffer to create mode and clears the filter, then
// refreshes the list so the user sees the unfiltered view the saved note
// will appear in. An unsaved draft is discarded; destructive-action
// confirmation is the caller's concern.
func (c *Coordinator) NewNote(ctx context.Context) error {
	c.mu.Lock()
	c.buffer.reset()
	c.filter = Unfiltered()
	c.mu.Unlock()

	return c.RefreshNotes(ctx)
}

// SetSearch activates the free-text search filter (clearing any tag filter)
// and refreshes the list. A blank text clears the filter instead.
func (c *Coordinator) SetSearch(ctx context.Context, text string) error {
	c.mu.Lock()
	c.filter = SearchText(text)
	c.mu.Unlock()

	return c.RefreshNotes(ctx)
}

// SetTag activates the tag filter (clearing any search text) and refreshes
// the list. A blank tag clears the filter instead.
func (c *Coordinator) SetTag(ctx context.Context, tag string) error {
	c.mu.Lock()
	c.filter = TagFilter(tag)
	c.mu.Unlock()

	return c.RefreshNotes(ctx)
}

// ClearFilter returns to the unfiltered list and refreshes it.
func (c *Coordinator) ClearFilter(ctx context.Context) error {
	c.mu.Lock()
	c.filter = Unfiltered()
	c.mu.Unlock()

	return c.RefreshNotes(ctx)
}

// Save persists the draft: a create when the buffer is unbound, an update of
// the bound note otherwise. An empty title fails with ErrValidation before
// any network call. Only one save may be in flight at a time; a second
// attempt fails with ErrInvalidState. On success the buffer binds the
// server-assigned ID (create) and the list and tag caches are refreshed, in
// that order; a tag refresh failure is non-fatal. On gateway failure the
// buffer is left unchanged so the user can retry.
func (c *Coordinator) Save(ctx context.Context) (models.Note, error) {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidState, ErrSaveInFlight)
	}
	if strings.TrimSpace(c.buffer.title) == "" {
		c.mu.Unlock()
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyTitle)
	}

	draft := c.buffer.draft()
	boundID := c.buffer.boundNoteID
	c.saving = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.saving = false
		c.mu.Unlock()
	}()

	var (
		note models.Note
		err  error
	)
	if boundID == 0 {
		note, err = c.gateway.CreateNote(ctx, draft)
	} else {
		note, err = c.gateway.UpdateNote(ctx, boundID, draft)
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	c.mu.Lock()
	// Bind only if the buffer is still the unbound draft this create was
	// issued for; selecting another note mid-flight must not be clobbered.
	if boundID == 0 && c.buffer.boundNoteID == 0 {
		c.buffer.bind(note.ID)
	}
	c.mu.Unlock()

	c.refreshAfterMutation(ctx)

	return note, nil
}

// Delete removes the bound note. It fails with ErrInvalidState when the
// buffer is in create mode. On success the buffer resets to create mode and
// the list and tag caches are refreshed.
func (c *Coordinator) Delete(ctx context.Context) error {
	c.mu.Lock()
	if !c.buffer.editing() {
		c.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrInvalidState, ErrNoBoundNote)
	}
	noteID := c.buffer.boundNoteID
	c.mu.Unlock()

	if err := c.gateway.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	c.mu.Lock()
	c.buffer.reset()
	c.mu.Unlock()

	c.refreshAfterMutation(ctx)

	return nil
}

// RefreshNotes re-fetches the list for the current filter and replaces the
// cache wholesale. If another refresh is issued while this one is in flight,
// whichever result belongs to the most recently issued request wins and the
// other is discarded.
func (c *Coordinator) RefreshNotes(ctx context.Context) error {
	c.mu.Lock()
	filter := c.filter
	seq := c.list.next()
	c.mu.Unlock()

	notes, err := c.queryNotes(ctx, filter)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	c.mu.Lock()
	applied := c.list.apply(seq, notes)
	c.mu.Unlock()

	if !applied {
		c.logger.Debug().Uint64("seq", seq).Msg("discarded stale note list refresh")
	}
	return nil
}

// RefreshTags re-fetches the distinct tag set. On failure the previous
// cached set is kept intact and the error is returned for the caller to
// downgrade to a warning.
func (c *Coordinator) RefreshTags(ctx context.Context) error {
	tags, err := c.gateway.ListTags(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	c.mu.Lock()
	c.catalog.replace(tags)
	c.mu.Unlock()

	return nil
}

func (c *Coordinator) queryNotes(ctx context.Context, filter FilterState) ([]models.Note, error) {
	switch filter.Mode() {
	case ModeSearch:
		return c.gateway.SearchNotes(ctx, filter.Query())
	case ModeTag:
		return c.gateway.ListNotes(ctx, filter.Tag())
	default:
		return c.gateway.ListNotes(ctx, "")
	}
}

// refreshAfterMutation runs the list refresh then the tag refresh after a
// successful save or delete. Neither failure is fatal: the caches keep their
// last-known-good contents and the errors are logged.
func (c *Coordinator) refreshAfterMutation(ctx context.Context) {
	if err := c.RefreshNotes(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("note list refresh after mutation failed")
	}
	if err := c.RefreshTags(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("tag refresh after mutation failed")
	}
}
