// Package service holds the application controller: the window state and the
// send action that ties the model client to the conversation log.
//
// One send runs
//
//	Idle -> Sending -> Success (append, reload history) -> Idle
//	               \-> Failed (keep input, nothing stored) -> Idle
//
// and at most one send is in flight at a time.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"llmChat/internal/ai_model"
	"llmChat/internal/db/conversation"

	"github.com/google/uuid"
)

// ErrBusy is returned by Send while another send is in flight.
var ErrBusy = errors.New("a message is already being sent")

type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
)

// Snapshot is a copy of the window state.
type Snapshot struct {
	State     State                `json:"state"`
	Model     string               `json:"model"`
	Input     string               `json:"input"`
	Response  string               `json:"response"`
	History   []conversation.Entry `json:"history"`
	LastError string               `json:"lastError,omitempty"`
}

type Controller struct {
	model ai_model.AiModel
	repo  conversation.Repository
	now   func() time.Time

	sending sync.Mutex // held for a whole send or refresh; TryLock is the busy guard

	mu       sync.Mutex
	state    State
	input    string
	response string
	history  []conversation.Entry
	lastErr  string
}

func NewController(model ai_model.AiModel, repo conversation.Repository) *Controller {
	return &Controller{
		model:   model,
		repo:    repo,
		now:     time.Now,
		state:   StateIdle,
		history: []conversation.Entry{},
	}
}

// WithClock replaces the clock used for entry timestamps.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	return c
}

func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	h := make([]conversation.Entry, len(c.history))
	copy(h, c.history)
	return Snapshot{
		State:     c.state,
		Model:     c.model.Name(),
		Input:     c.input,
		Response:  c.response,
		History:   h,
		LastError: c.lastErr,
	}
}

// Refresh reloads the full history from the store and rebinds it. While a
// send is in flight the current snapshot is returned as is; that send reloads
// the history itself once its entry is stored.
func (c *Controller) Refresh(ctx context.Context) (Snapshot, error) {
	if !c.sending.TryLock() {
		return c.Snapshot(), nil
	}
	defer c.sending.Unlock()

	entries, err := c.repo.LoadAll(ctx)
	if err != nil {
		log.Println("[Controller.Refresh] load history:", err)
		return c.Snapshot(), fmt.Errorf("load history: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = entries
	return c.snapshotLocked(), nil
}

// Submit sets the input to text and sends it.
func (c *Controller) Submit(ctx context.Context, text string) (Snapshot, error) {
	if !c.sending.TryLock() {
		log.Println("[Controller.Submit] rejected: send in flight")
		return c.Snapshot(), ErrBusy
	}
	defer c.sending.Unlock()

	c.SetInput(text)
	return c.send(ctx)
}

// Send forwards the current input to the model. The input is not validated;
// an empty string is sent as is. On success the exchange is stored, the input
// is cleared and the history reloaded. If the model call or the insert fails
// the input is kept and the error is recorded in the snapshot and returned.
func (c *Controller) Send(ctx context.Context) (Snapshot, error) {
	if !c.sending.TryLock() {
		log.Println("[Controller.Send] rejected: send in flight")
		return c.Snapshot(), ErrBusy
	}
	defer c.sending.Unlock()

	return c.send(ctx)
}

func (c *Controller) send(ctx context.Context) (Snapshot, error) {
	sendID := uuid.NewString()

	c.mu.Lock()
	userMessage := c.input
	c.state = StateSending
	c.lastErr = ""
	c.mu.Unlock()

	log.Printf("[Controller.send] id=%s model=%s input bytes=%d", sendID, c.model.Name(), len(userMessage))

	reply, err := c.model.Generate(ctx, userMessage)
	if err != nil {
		return c.fail(sendID, fmt.Errorf("model: %w", err))
	}

	c.mu.Lock()
	c.response = reply
	c.mu.Unlock()

	entry := conversation.NewEntry{
		Timestamp:   c.now().Format(conversation.TimestampLayout),
		UserMessage: userMessage,
		BotResponse: reply,
	}
	id, err := c.repo.Append(ctx, entry)
	if err != nil {
		return c.fail(sendID, fmt.Errorf("save conversation: %w", err))
	}

	c.mu.Lock()
	if c.input == userMessage {
		c.input = ""
	}
	c.mu.Unlock()

	entries, err := c.repo.LoadAll(ctx)
	if err != nil {
		return c.fail(sendID, fmt.Errorf("load history: %w", err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = entries
	c.state = StateIdle
	log.Printf("[Controller.send] id=%s stored entry=%d history=%d", sendID, id, len(entries))
	return c.snapshotLocked(), nil
}

func (c *Controller) fail(sendID string, err error) (Snapshot, error) {
	log.Printf("[Controller.send] id=%s error: %v", sendID, err)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err.Error()
	c.state = StateIdle
	return c.snapshotLocked(), err
}
