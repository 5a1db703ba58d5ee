package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	reply    *schema.Message
	err      error
	messages []*schema.Message
	options  *model.Options
}

func (f *fakeChatModel) Generate(_ context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.messages = in
	f.options = model.GetCommonOptions(&model.Options{}, opts...)
	return f.reply, f.err
}

func (f *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

func TestChatModelGenerator_Complete(t *testing.T) {
	fake := &fakeChatModel{reply: &schema.Message{
		Role:    schema.Assistant,
		Content: " Visit Hundru falls. ",
		ResponseMeta: &schema.ResponseMeta{Usage: &schema.TokenUsage{
			PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120,
		}},
	}}
	g := NewChatModelGenerator(fake, "gemini-2.5-flash", 0)

	out, err := g.Complete(context.Background(), "system text", "user text", 0.7)
	require.NoError(t, err)
	assert.Equal(t, "Visit Hundru falls.", out)

	require.Len(t, fake.messages, 2)
	assert.Equal(t, schema.System, fake.messages[0].Role)
	assert.Equal(t, "system text", fake.messages[0].Content)
	assert.Equal(t, schema.User, fake.messages[1].Role)
	require.NotNil(t, fake.options.Temperature)
	assert.InDelta(t, 0.7, *fake.options.Temperature, 0.0001)
}

func TestChatModelGenerator_Errors(t *testing.T) {
	_, err := NewChatModelGenerator(&fakeChatModel{err: errors.New("quota")}, "m", 0).
		Complete(context.Background(), "s", "u", 0.7)
	assert.Error(t, err)

	_, err = NewChatModelGenerator(&fakeChatModel{reply: schema.AssistantMessage("", nil)}, "m", 0).
		Complete(context.Background(), "s", "u", 0.7)
	assert.ErrorIs(t, err, ErrEmptyCompletion)

	var nilGen *ChatModelGenerator
	_, err = nilGen.Complete(context.Background(), "s", "u", 0.7)
	assert.ErrorIs(t, err, ErrNoGenerator)
}
