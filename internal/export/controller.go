// Package export saves the rendered canvas locally and submits it to the
// rendering service, one request at a time.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"memeforge/pkg/meme"
)

// Result is the authoritative render returned by the service.
type Result struct {
	PNG   []byte
	Image image.Image
}

type outcome struct {
	body []byte
	err  error
}

type Creator interface {
	CreateMeme(ctx context.Context, sub meme.Submission) ([]byte, error)
}

// Controller runs on the editor's event loop. Submit starts the only
// background goroutine; its outcome is applied by Poll or Wait on the
// caller's goroutine, so Status, Result and Busy never race with it.
type Controller struct {
	client Creator

	Status string
	Result *Result

	busy bool
	done chan outcome
}

func NewController(client Creator) *Controller {
	return &Controller{client: client, done: make(chan outcome, 1)}
}

func (c *Controller) Busy() bool { return c.busy }

// ExportLocal writes frame as PNG to path. frame must be the last completed
// render; nothing is drawn here.
func (c *Controller) ExportLocal(frame image.Image, path string) error {
	data, err := meme.EncodePNG(frame)
	if err != nil {
		c.Status = "Export failed: " + err.Error()
		return err
	}
	if path == "" {
		path = meme.PreviewFilename
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		err = fmt.Errorf("%w: %v", meme.ErrExportFailure, err)
		c.Status = "Export failed: " + err.Error()
		return err
	}
	c.Status = "Saved preview " + filepath.Base(path)
	return nil
}

// Submit encodes frame and posts it with the layer metadata. It returns
// false without doing anything while another submission is in flight.
func (c *Controller) Submit(ctx context.Context, frame image.Image, top, bottom meme.TextLayer, style meme.Style) bool {
	if c.busy {
		return false
	}
	c.Result = nil
	data, err := meme.EncodePNG(frame)
	if err != nil {
		c.Status = "Could not create image: " + err.Error()
		return false
	}
	c.busy = true
	c.Status = "Sending image to server..."
	sub := meme.Submission{PNG: data, Top: top, Bottom: bottom, Style: style}
	go func() {
		body, err := c.client.CreateMeme(ctx, sub)
		c.done <- outcome{body: body, err: err}
	}()
	return true
}

// Poll applies a settled submission if there is one and reports whether it
// did. It never blocks.
func (c *Controller) Poll() bool {
	if !c.busy {
		return false
	}
	select {
	case o := <-c.done:
		c.settle(o)
		return true
	default:
		return false
	}
}

// Wait blocks until the in-flight submission settles and applies it.
func (c *Controller) Wait() {
	if !c.busy {
		return
	}
	c.settle(<-c.done)
}

func (c *Controller) settle(o outcome) {
	c.busy = false
	var remote *meme.RemoteError
	switch {
	case errors.As(o.err, &remote):
		c.Status = fmt.Sprintf("Server returned error: %d", remote.StatusCode)
		return
	case errors.Is(o.err, meme.ErrTransportFailure):
		var te *meme.TransportError
		if errors.As(o.err, &te) {
			c.Status = "Request failed: " + te.Err.Error()
		} else {
			c.Status = "Request failed: " + o.err.Error()
		}
		return
	case o.err != nil:
		c.Status = "Request failed: " + o.err.Error()
		return
	}

	res := &Result{PNG: o.body}
	if img, _, err := meme.DecodeImage(bytes.NewReader(o.body)); err == nil {
		res.Image = img
	}
	c.Result = res
	c.Status = "Done: rendered meme is ready"
}

// SaveResult writes the service's render to path.
func (c *Controller) SaveResult(path string) error {
	if c.Result == nil || len(c.Result.PNG) == 0 {
		return errors.New("no rendered meme yet")
	}
	if path == "" {
		path = meme.ResultFilename
	}
	if err := os.WriteFile(path, c.Result.PNG, 0o644); err != nil {
		return err
	}
	c.Status = "Saved " + filepath.Base(path)
	return nil
}
