package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/amin75t/task-manager/internal/pkg/ai"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
)

type fakeCompleter struct {
	reply string
	err   error
	msgs  []ai.Message
}

func (f *fakeCompleter) Complete(_ context.Context, msgs []ai.Message) (string, error) {
	f.msgs = msgs
	return f.reply, f.err
}

func TestProcessTaskParsesJSON(t *testing.T) {
	c := &fakeCompleter{reply: `{"title": "تماس تلفنی", "preprocessed_text": "تماس زنگ زدن به یکی"}`}
	p := NewProcessor(c, instrument.NewNoop())

	out, err := p.ProcessTask(context.Background(), "تسم زمگ به یکی")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "تماس تلفنی" {
		t.Fatalf("unexpected title %q", out.Title)
	}
	if out.PreprocessedText != "تماس زنگ زدن به یکی" {
		t.Fatalf("unexpected text %q", out.PreprocessedText)
	}

	if len(c.msgs) != 2 || c.msgs[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", c.msgs)
	}
	if c.msgs[1].Content != "Task text to process: تسم زمگ به یکی" {
		t.Fatalf("unexpected user message %q", c.msgs[1].Content)
	}
}

func TestProcessTaskStripsCodeFences(t *testing.T) {
	c := &fakeCompleter{reply: "```json\n{\"title\": \"عنوان\", \"preprocessed_text\": \"متن\"}\n```"}
	p := NewProcessor(c, instrument.NewNoop())

	out, err := p.ProcessTask(context.Background(), "متن")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "عنوان" || out.PreprocessedText != "متن" {
		t.Fatalf("unexpected output %+v", out)
	}
}

func TestProcessTaskBareFences(t *testing.T) {
	c := &fakeCompleter{reply: "```\n{\"title\": \"عنوان\", \"preprocessed_text\": \"متن\"}\n```"}
	p := NewProcessor(c, instrument.NewNoop())

	out, err := p.ProcessTask(context.Background(), "متن")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "عنوان" {
		t.Fatalf("unexpected title %q", out.Title)
	}
}

func TestProcessTaskFallbackOnInvalidJSON(t *testing.T) {
	c := &fakeCompleter{reply: "متن خام بدون ساختار"}
	p := NewProcessor(c, instrument.NewNoop())

	out, err := p.ProcessTask(context.Background(), "متن")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "متن خام بدون ساختار" || out.PreprocessedText != "متن خام بدون ساختار" {
		t.Fatalf("expected raw reply fallback, got %+v", out)
	}
}

func TestProcessTaskPropagatesError(t *testing.T) {
	c := &fakeCompleter{err: errors.New("upstream down")}
	p := NewProcessor(c, instrument.NewNoop())

	if _, err := p.ProcessTask(context.Background(), "متن"); err == nil {
		t.Fatal("expected completion error")
	}
}
