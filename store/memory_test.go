package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"fitness-chatbot/models"
	"fitness-chatbot/store"
)

func TestInMemoryStoreAppendAndList(t *testing.T) {
	st := store.NewInMemoryStore()
	ctx := context.Background()

	assert.NoError(t, st.Append(ctx, "s1", models.SenderUser, "hi"))
	assert.NoError(t, st.Append(ctx, "s1", models.SenderBot, "hello"))
	assert.NoError(t, st.Append(ctx, "s2", models.SenderUser, "other session"))

	messages, err := st.List(ctx, "s1")
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "hi", messages[0].Text)
	assert.Equal(t, "hello", messages[1].Text)
	assert.False(t, messages[1].Timestamp.Before(messages[0].Timestamp))
}

func TestInMemoryStoreUnknownSession(t *testing.T) {
	st := store.NewInMemoryStore()

	messages, err := st.List(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestInMemoryStoreListReturnsCopy(t *testing.T) {
	st := store.NewInMemoryStore()
	ctx := context.Background()

	assert.NoError(t, st.Append(ctx, "s1", models.SenderUser, "hi"))

	messages, _ := st.List(ctx, "s1")
	messages[0].Text = "mutated"

	again, _ := st.List(ctx, "s1")
	assert.Equal(t, "hi", again[0].Text)
}
