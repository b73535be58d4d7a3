// Package ai adapts the chat completion client into the task processing
// port: it carries the Persian correction prompt and decodes the model's
// JSON reply.
package ai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/amin75t/task-manager/internal/pkg/ai"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/task/usecase"
	"go.opentelemetry.io/otel/codes"
)

const systemPrompt = `You are a Persian/Farsi task processing assistant. You will receive a task description in Persian that may contain typos, missing words, or grammatical errors.

Your job is to:
1. First, identify and correct all Persian typos and spelling mistakes
2. Fix any missing words or grammatical errors in Persian
3. Keep the text ONLY in Persian - DO NOT translate to any other language
4. Generate a short, descriptive title in Persian (3-7 words)
5. Make the text clear and professional in Persian
6. Return ONLY a valid JSON object with Persian text

IMPORTANT RULES:
- Always return Persian text in both title and preprocessed_text
- Never translate Persian to English or any other language
- Fix Persian typos before processing (e.g., "تسم" → "تماس", "زمگ" → "زنگ")
- Keep the original meaning and intent in Persian

Examples:
Input: "تسم زمگ به یکی"
Output: {"title": "تماس تلفنی", "preprocessed_text": "تماس زنگ زدن به یکی"}

Input: "نیاز بع نوشتن مستندت"
Output: {"title": "نوشتن مستندات", "preprocessed_text": "نیاز به نوشتن مستندات"}

Return your response in this exact JSON format (no markdown, no code blocks, just pure JSON):
{
  "title": "عنوان فارسی اینجا",
  "preprocessed_text": "متن اصلاح شده فارسی اینجا"
}`

type Processor struct {
	client ai.Completer
	ins    instrument.Instrumentation
}

func NewProcessor(client ai.Completer, ins instrument.Instrumentation) *Processor {
	return &Processor{client: client, ins: ins}
}

func (p *Processor) ProcessTask(ctx context.Context, text string) (_ *usecase.ProcessedTask, err error) {
	ctx, span := p.ins.Tracer("task.outbound.ai").Start(ctx, "ProcessTask")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	reply, err := p.client.Complete(ctx, []ai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "Task text to process: " + text},
	})
	if err != nil {
		return nil, err
	}

	reply = stripCodeFences(reply)

	var parsed struct {
		Title            string `json:"title"`
		PreprocessedText string `json:"preprocessed_text"`
	}
	// Models occasionally ignore the JSON instruction. Rather than failing
	// the request, hand the raw reply back as both fields.
	if jsonErr := json.Unmarshal([]byte(reply), &parsed); jsonErr != nil || parsed.Title == "" || parsed.PreprocessedText == "" {
		return &usecase.ProcessedTask{
			Title:            reply,
			PreprocessedText: reply,
		}, nil
	}

	return &usecase.ProcessedTask{
		Title:            parsed.Title,
		PreprocessedText: parsed.PreprocessedText,
	}, nil
}

// stripCodeFences removes a surrounding markdown code block, with or without
// a json language tag.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
