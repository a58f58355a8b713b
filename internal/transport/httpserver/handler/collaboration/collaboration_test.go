package collaboration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	collaborationdomain "collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/transport/httpserver/middleware"
	"collabhive-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectID = "6f1c2a8e-0b7d-4a53-9a4e-1f2d3c4b5a69"

type fakeCollaboration struct {
	creatorID   string
	joinErr     error
	joined      []string
	messages    []string
	managed     *collaborationdomain.ManageInput
	left        []string
	requests    []collaborationdomain.CreatorRequests
	creatorErr  error
	creatorRows []collaborationdomain.CreatorProjectCard
	memberRows  []collaborationdomain.CollaboratorProjectCard
}

func (f *fakeCollaboration) RequestToJoin(ctx context.Context, id, userID, message string) error {
	if f.joinErr != nil {
		return f.joinErr
	}
	f.joined = append(f.joined, userID)
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeCollaboration) Manage(ctx context.Context, id string, input collaborationdomain.ManageInput) error {
	f.managed = &input
	return nil
}

func (f *fakeCollaboration) Leave(ctx context.Context, id, userID string) error {
	f.left = append(f.left, userID)
	return nil
}

func (f *fakeCollaboration) CanEditProject(ctx context.Context, id, userID string) (bool, error) {
	return userID != "" && userID == f.creatorID, nil
}

func (f *fakeCollaboration) CreatorRequests(ctx context.Context, userID string) ([]collaborationdomain.CreatorRequests, error) {
	return f.requests, nil
}

func (f *fakeCollaboration) CreatorProjectCards(ctx context.Context, userID string) ([]collaborationdomain.CreatorProjectCard, error) {
	if f.creatorErr != nil {
		return nil, f.creatorErr
	}
	return f.creatorRows, nil
}

func (f *fakeCollaboration) CollaboratorProjectCards(ctx context.Context, userID string) ([]collaborationdomain.CollaboratorProjectCard, error) {
	return f.memberRows, nil
}

func newRouter(h *Handlers, userID string) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if userID != "" {
				req = req.WithContext(middleware.WithUser(req.Context(), middleware.User{ID: userID}))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/collaboration/creator-requests", h.ListCreatorRequests)
	r.Get("/collaboration/creator-projects", h.ListCreatorProjects)
	r.Get("/collaboration/collaborator-projects", h.ListCollaboratorProjects)
	r.Post("/collaboration/{projectId}", h.RequestToJoin)
	r.Put("/collaboration/{projectId}", h.Manage)
	r.Delete("/collaboration/{projectId}", h.Leave)
	return r
}

func do(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequestToJoin(t *testing.T) {
	svc := &fakeCollaboration{}
	router := newRouter(New(svc, logger.Nop()), "u2")

	rec := do(router, http.MethodPost, "/collaboration/"+projectID, `{"requestMessage":"I can help with the parser"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Join request sent!"}`, rec.Body.String())
	assert.Equal(t, []string{"u2"}, svc.joined)
	assert.Equal(t, []string{"I can help with the parser"}, svc.messages)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/collaboration/"+projectID, `{"requestMessage":"   "}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/collaboration/"+projectID, ``).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPost, "/collaboration/42", `{"requestMessage":"hi"}`).Code)
}

func TestRequestToJoinRefusals(t *testing.T) {
	cases := map[error]int{
		collaborationdomain.ErrAlreadyRequested:    http.StatusBadRequest,
		collaborationdomain.ErrPreviouslyDeclined:  http.StatusBadRequest,
		collaborationdomain.ErrAlreadyCollaborator: http.StatusBadRequest,
		collaborationdomain.ErrCreatorCannotJoin:   http.StatusBadRequest,
		collaborationdomain.ErrProjectNotFound:     http.StatusNotFound,
		errors.New("tx aborted"):                   http.StatusInternalServerError,
	}
	for err, status := range cases {
		svc := &fakeCollaboration{joinErr: err}
		rec := do(newRouter(New(svc, logger.Nop()), "u2"), http.MethodPost, "/collaboration/"+projectID, `{"requestMessage":"hi"}`)
		assert.Equal(t, status, rec.Code, err.Error())
	}
}

func TestManageRequiresCreator(t *testing.T) {
	svc := &fakeCollaboration{creatorID: "u1"}
	body := `{"requestsAccepted":["u2"],"requestsDeclined":["u3"],"collaboratorsRemoved":["u4"]}`

	rec := do(newRouter(New(svc, logger.Nop()), "u2"), http.MethodPut, "/collaboration/"+projectID, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, svc.managed)

	rec = do(newRouter(New(svc, logger.Nop()), "u1"), http.MethodPut, "/collaboration/"+projectID, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Collaborations managed!"}`, rec.Body.String())
	assert.Equal(t, &collaborationdomain.ManageInput{
		Accepted: []string{"u2"},
		Declined: []string{"u3"},
		Removed:  []string{"u4"},
	}, svc.managed)
}

func TestLeave(t *testing.T) {
	svc := &fakeCollaboration{}

	rec := do(newRouter(New(svc, logger.Nop()), "u2"), http.MethodDelete, "/collaboration/"+projectID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"u2"}, svc.left)

	assert.Equal(t, http.StatusUnauthorized, do(newRouter(New(svc, logger.Nop()), ""), http.MethodDelete, "/collaboration/"+projectID, "").Code)
}

func TestCreatorViews(t *testing.T) {
	svc := &fakeCollaboration{
		requests: []collaborationdomain.CreatorRequests{{ProjectID: projectID, ProjectName: "Compiler", NumberOfRequests: 2}},
		creatorRows: []collaborationdomain.CreatorProjectCard{{
			ID: projectID, Name: "Compiler", TechnologyStackText: "Go and Rust", CollaboratorsText: "With Vic", IsOpen: true,
		}},
	}
	router := newRouter(New(svc, logger.Nop()), "u1")

	rec := do(router, http.MethodGet, "/collaboration/creator-requests", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"projectId":"`+projectID+`","projectName":"Compiler","numberOfRequests":2}]`, rec.Body.String())

	rec = do(router, http.MethodGet, "/collaboration/creator-projects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cards []creatorProjectCardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "With Vic", cards[0].CollaboratorsText)

	svc.creatorErr = collaborationdomain.ErrNoProjects
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/collaboration/creator-projects", "").Code)

	rec = do(router, http.MethodGet, "/collaboration/collaborator-projects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
