package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"alfredoptarigan/hrms-assistant/internal/models"
)

func newTestSession(t *testing.T, gen TextGenerator) (*ChatSession, *SessionLog) {
	log := NewSessionLog()
	return NewChatSession(uuid.New(), log, gen, zaptest.NewLogger(t)), log
}

func assertPaired(t *testing.T, turns []models.ChatTurn) {
	t.Helper()

	require.Zero(t, len(turns)%2, "log must hold complete exchanges")
	seen := make(map[uuid.UUID]bool, len(turns))
	for i, turn := range turns {
		want := models.SpeakerUser
		if i%2 == 1 {
			want = models.SpeakerAssistant
		}
		assert.Equal(t, want, turn.Speaker, "turn %d", i)
		assert.False(t, seen[turn.ID], "duplicate turn id at %d", i)
		seen[turn.ID] = true
	}
}

func TestChatSession_Send_AppendsUserTurnImmediately(t *testing.T) {
	gen := newGatedGenerator()
	session, log := newTestSession(t, gen)

	done, err := session.Send(context.Background(), "Draft a welcome email", "")
	require.NoError(t, err)

	turns := log.Turns()
	require.Len(t, turns, 1, "user turn is visible before the call resolves")
	assert.Equal(t, models.SpeakerUser, turns[0].Speaker)
	assert.Equal(t, "Draft a welcome email", turns[0].Text)
	assert.NotEqual(t, uuid.Nil, turns[0].ID)
	assert.False(t, turns[0].CreatedAt.IsZero())
	assert.True(t, session.AwaitingReply())

	call := <-gen.calls
	assert.Equal(t, "Draft a welcome email", call.prompt)
	assert.Equal(t, "chat", call.opts.Operation)
	assert.Equal(t, hrAssistantPersona, call.opts.SystemInstruction)
	assert.Nil(t, call.opts.ResponseSchema)

	call.resolve("Here is a draft.", nil)
	<-done

	turns = session.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, models.SpeakerAssistant, turns[1].Speaker)
	assert.Equal(t, "Here is a draft.", turns[1].Text)
	assert.False(t, session.AwaitingReply())
}

func TestChatSession_Send_WithContext(t *testing.T) {
	gen := &stubGenerator{reply: fakeReply{text: "ok"}}
	session, _ := newTestSession(t, gen)

	done, err := session.Send(context.Background(), "Summarize attrition", "Q3 headcount report")
	require.NoError(t, err)
	<-done

	require.Equal(t, 1, gen.calls())
	assert.Equal(t, "Summarize attrition\nContext: Q3 headcount report", gen.prompts[0])
	assert.Equal(t, "Summarize attrition", session.Turns()[0].Text, "context is not part of the user turn")
}

func TestChatSession_Send_RejectsBlankMessages(t *testing.T) {
	gen := &stubGenerator{}
	session, log := newTestSession(t, gen)

	for _, text := range []string{"", "   ", "\n\t"} {
		done, err := session.Send(context.Background(), text, "")
		assert.ErrorIs(t, err, ErrEmptyMessage)
		assert.Nil(t, done)
	}

	assert.Zero(t, log.Len())
	assert.Zero(t, gen.calls())
}

func TestChatSession_Send_RejectsWhileReplyPending(t *testing.T) {
	gen := newGatedGenerator()
	session, log := newTestSession(t, gen)

	done, err := session.Send(context.Background(), "first", "")
	require.NoError(t, err)
	call := <-gen.calls

	second, err := session.Send(context.Background(), "second", "")
	assert.ErrorIs(t, err, ErrReplyPending)
	assert.Nil(t, second)
	assert.Equal(t, 1, log.Len(), "rejected send must not touch the log")

	call.resolve("reply to first", nil)
	<-done

	done, err = session.Send(context.Background(), "second", "")
	require.NoError(t, err)
	(<-gen.calls).resolve("reply to second", nil)
	<-done

	turns := log.Turns()
	assertPaired(t, turns)
	assert.Equal(t, []string{"first", "reply to first", "second", "reply to second"},
		[]string{turns[0].Text, turns[1].Text, turns[2].Text, turns[3].Text})
}

func TestChatSession_Send_FailureAppendsErrorTurn(t *testing.T) {
	session, log := newTestSession(t, &stubGenerator{reply: fakeReply{err: ErrGenerationFailed}})

	done, err := session.Send(context.Background(), "hello", "")
	require.NoError(t, err)
	<-done

	turns := log.Turns()
	assertPaired(t, turns)
	assert.Equal(t, ChatFailureMessage, turns[1].Text)
	assert.False(t, session.AwaitingReply())
}

func TestChatSession_Send_EmptyReplyUsesPlaceholder(t *testing.T) {
	session, log := newTestSession(t, &stubGenerator{})

	done, err := session.Send(context.Background(), "hello", "")
	require.NoError(t, err)
	<-done

	assert.Equal(t, ChatPlaceholder, log.Turns()[1].Text)
}

func TestChatSession_PairingAndMonotonicGrowth(t *testing.T) {
	replies := []fakeReply{
		{text: "one"},
		{err: ErrGenerationFailed},
		{text: ""},
		{text: "four"},
	}

	gen := newGatedGenerator()
	session, log := newTestSession(t, gen)

	history := []models.ChatTurn{}
	for i, reply := range replies {
		done, err := session.Send(context.Background(), fmt.Sprintf("question %d", i), "")
		require.NoError(t, err)

		// A concurrent attempt while waiting is always refused.
		_, err = session.Send(context.Background(), "interleaved", "")
		require.ErrorIs(t, err, ErrReplyPending)

		(<-gen.calls).resolve(reply.text, reply.err)
		<-done

		turns := log.Turns()
		require.GreaterOrEqual(t, len(turns), len(history))
		assert.Equal(t, history, turns[:len(history)], "earlier turns never change")
		history = turns
	}

	assert.Len(t, history, 2*len(replies))
	assertPaired(t, history)
}

func TestChatSession_Greeting(t *testing.T) {
	session, log := newTestSession(t, &stubGenerator{})

	assert.Equal(t, ChatGreeting, session.Greeting())
	assert.Zero(t, log.Len(), "greeting is not part of the log")
}

func TestSessionLog_TurnsReturnsCopy(t *testing.T) {
	log := NewSessionLog()
	log.Append(models.ChatTurn{ID: uuid.New(), Speaker: models.SpeakerUser, Text: "hi"})

	snapshot := log.Turns()
	snapshot[0].Text = "mutated"

	assert.Equal(t, "hi", log.Turns()[0].Text)
}
