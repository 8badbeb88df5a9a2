package server

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleParseTranscript(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	rec := doJSON(t, s, http.MethodPost, "/intake/transcript", map[string]any{
		"transcript": "My name is Asha Verma. My skills include Java, Python, and Leadership.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Patch struct {
			Profile struct {
				Name string `json:"name"`
			} `json:"profile"`
			SkillDescriptions []string `json:"skillDescriptions"`
		} `json:"patch"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "Asha Verma", body.Patch.Profile.Name)
	assert.Equal(t, []string{"Java", "Python", "Leadership"}, body.Patch.SkillDescriptions)
}

func TestHandleParseTranscript_MissingTranscript(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	rec := doJSON(t, s, http.MethodPost, "/intake/transcript", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "transcript is required", body["message"])
}

func TestHandleParseTranscript_NoMatchesIsStillOK(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	rec := doJSON(t, s, http.MethodPost, "/intake/transcript", map[string]any{
		"transcript": "????",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCreateSession(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	rec := doJSON(t, s, http.MethodPost, "/intake/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, 0, resp.StepIndex)
	assert.False(t, resp.Complete)
	assert.Equal(t, "What is your name?", resp.Prompt)
	assert.NotEmpty(t, resp.Placeholder)
	assert.Len(t, resp.Messages, 1)
}

func TestHandleCreateSession_HindiLocale(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	rec := doJSON(t, s, http.MethodPost, "/intake/sessions", map[string]any{"locale": "hi"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, "आपका नाम क्या है?", resp.Prompt)
}

func TestHandleCreateSession_FreshIDPerSession(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	var first, second SessionResponse
	decode(t, doJSON(t, s, http.MethodPost, "/intake/sessions", nil), &first)
	decode(t, doJSON(t, s, http.MethodPost, "/intake/sessions", nil), &second)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestHandleGetSession(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	var created SessionResponse
	decode(t, doJSON(t, s, http.MethodPost, "/intake/sessions", nil), &created)

	rec := doJSON(t, s, http.MethodGet, "/intake/sessions/"+created.SessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, created.SessionID, resp.SessionID)
	assert.Equal(t, 0, resp.StepIndex)
}

func TestHandleGetSession_Unknown(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	rec := doJSON(t, s, http.MethodGet, "/intake/sessions/no-such-session", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSessionAnswer(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	var sess SessionResponse
	decode(t, doJSON(t, s, http.MethodPost, "/intake/sessions", nil), &sess)
	answerPath := "/intake/sessions/" + sess.SessionID + "/answer"

	rec := doJSON(t, s, http.MethodPost, answerPath, map[string]any{"answer": "Asha Verma"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, 1, resp.StepIndex)
	assert.Equal(t, "What work have you done before?", resp.Prompt)
	require.NotNil(t, resp.Resume)
	assert.Equal(t, "Asha Verma", resp.Resume.Profile.Name)
	assert.Len(t, resp.Messages, 3, "welcome, answered prompt, answer")
}

func TestHandleSessionAnswer_EmptyAnswerIsNoOp(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	var sess SessionResponse
	decode(t, doJSON(t, s, http.MethodPost, "/intake/sessions", nil), &sess)

	rec := doJSON(t, s, http.MethodPost, "/intake/sessions/"+sess.SessionID+"/answer",
		map[string]any{"answer": "   "})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decode(t, rec, &resp)
	assert.Equal(t, 0, resp.StepIndex)
	assert.Len(t, resp.Messages, 1)
}

func TestHandleSessionAnswer_ConcurrentSubmissionsAndReads(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	var sess SessionResponse
	decode(t, doJSON(t, s, http.MethodPost, "/intake/sessions", nil), &sess)
	answerPath := "/intake/sessions/" + sess.SessionID + "/answer"
	sessionPath := "/intake/sessions/" + sess.SessionID

	// Responses must snapshot session state: a reader decoding its body while
	// another answer lands must never see a half-applied submission.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			rec := doJSON(t, s, http.MethodPost, answerPath, map[string]any{"answer": "Asha Verma"})
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
		go func() {
			defer wg.Done()
			rec := doJSON(t, s, http.MethodGet, sessionPath, nil)
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp SessionResponse
			decode(t, rec, &resp)
			assert.LessOrEqual(t, resp.StepIndex, 5)
		}()
	}
	wg.Wait()

	// Eight answers against five steps: the interview completes, the extras
	// are no-ops.
	var final SessionResponse
	decode(t, doJSON(t, s, http.MethodGet, sessionPath, nil), &final)
	assert.True(t, final.Complete)
	assert.Equal(t, 5, final.StepIndex)
	assert.Len(t, final.Messages, 11)
}

func TestHandleSessionAnswer_RunToCompletion(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	var sess SessionResponse
	decode(t, doJSON(t, s, http.MethodPost, "/intake/sessions", nil), &sess)
	answerPath := "/intake/sessions/" + sess.SessionID + "/answer"

	answers := []string{
		"Asha Verma",
		"I worked at Amazon as an SDE from 2021 to 2023",
		"Java, Python",
		"B.Tech in CSE from IIT Bombay, 2020",
		"Engineer who ships",
	}
	var resp SessionResponse
	for _, answer := range answers {
		rec := doJSON(t, s, http.MethodPost, answerPath, map[string]any{"answer": answer})
		require.Equal(t, http.StatusOK, rec.Code)
		resp = SessionResponse{}
		decode(t, rec, &resp)
	}

	assert.True(t, resp.Complete)
	assert.Equal(t, len(answers), resp.StepIndex)
	assert.Empty(t, resp.Prompt)
	assert.Equal(t, "Engineer who ships", resp.Resume.Profile.Summary)

	// Submissions after completion change nothing.
	rec := doJSON(t, s, http.MethodPost, answerPath, map[string]any{"answer": "extra"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.Equal(t, len(answers), resp.StepIndex)
	assert.Equal(t, "Engineer who ships", resp.Resume.Profile.Summary)
}
