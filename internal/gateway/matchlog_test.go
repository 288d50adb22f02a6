package gateway

import (
	"context"
	"testing"

	"github.com/alexanderramin/herald/internal/domain"
	"github.com/alexanderramin/herald/internal/repository"
	"github.com/alexanderramin/herald/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_RecordsMatchLog(t *testing.T) {
	repo := repository.NewSQLiteMatchLogRepo(testutil.NewTestDB(t))
	sender := &fakeSender{}
	d := testDispatcher(t, sender, WithMatchLog(repo))
	ctx := context.Background()

	require.NoError(t, d.Handle(ctx, domain.Message{
		ChannelID: "chan-1", AuthorID: "user-1", Content: "any gift codes?",
	}))
	require.NoError(t, d.Handle(ctx, domain.Message{
		ChannelID: "chan-1", AuthorID: "user-1", Content: "hello",
	}))

	logs, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	counts, err := repo.CountByTopic(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "gift-codes", counts[0].Topic)
	assert.Equal(t, 1, counts[0].Count)
}

// Gated-out messages must not hit the log at all.
func TestDispatcher_GatedMessagesNotRecorded(t *testing.T) {
	repo := repository.NewSQLiteMatchLogRepo(testutil.NewTestDB(t))
	sender := &fakeSender{}
	d := testDispatcher(t, sender, WithMatchLog(repo))

	require.NoError(t, d.Handle(context.Background(), domain.Message{
		ChannelID: "chan-1", AuthorID: "self-bot", Content: "any gift codes?",
	}))

	logs, err := repo.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
