package services

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type fakeReply struct {
	text string
	err  error
}

// stubGenerator answers every call immediately with the same reply.
type stubGenerator struct {
	reply fakeReply

	mu      sync.Mutex
	prompts []string
	opts    []*GenerateOptions
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string, opts *GenerateOptions) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.opts = append(s.opts, opts)
	s.mu.Unlock()

	return s.reply.text, s.reply.err
}

func (s *stubGenerator) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

type pendingCall struct {
	prompt string
	opts   *GenerateOptions
	reply  chan fakeReply
}

func (c *pendingCall) resolve(text string, err error) {
	c.reply <- fakeReply{text: text, err: err}
}

// gatedGenerator hands every call to the test and blocks until the test
// resolves it.
type gatedGenerator struct {
	calls chan *pendingCall
}

func newGatedGenerator() *gatedGenerator {
	return &gatedGenerator{calls: make(chan *pendingCall)}
}

func (g *gatedGenerator) GenerateText(_ context.Context, prompt string, opts *GenerateOptions) (string, error) {
	call := &pendingCall{prompt: prompt, opts: opts, reply: make(chan fakeReply, 1)}
	g.calls <- call
	r := <-call.reply
	return r.text, r.err
}
