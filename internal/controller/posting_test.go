package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"sportshub-recruit-api/internal/entity"
	"sportshub-recruit-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostPosting(t *testing.T) {
	s := newServer(t)
	s.posting.On("CreatePosting", mock.Anything, mock.MatchedBy(func(p *entity.Posting) bool {
		return p.TeamId == 10 && p.Category == entity.CategoryTeam && p.MatchDate != nil &&
			p.MatchDate.Format(dateLayout) == "2026-11-07" && *p.RequiredPersonnel == 2
	})).Return(&entity.PostingOutputModel{Posting: entity.Posting{Id: 5, Title: "defenders"}, TeamName: "FC Mapo"}, nil)

	rec := s.do(http.MethodPost, "/api/recruits",
		`{"teamId":10,"writerProfileId":1,"title":"defenders","category":"TEAM","matchDate":"2026-11-07","requiredPersonnel":2}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out entity.PostingOutputModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(5), out.Id)
	assert.Equal(t, "FC Mapo", out.TeamName)
}

func TestPostPosting_Invalid(t *testing.T) {
	s := newServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"teamId":10,"writerProfileId":1,"category":"TEAM"}`},
		{"unknown category", `{"teamId":10,"writerProfileId":1,"title":"x","category":"FUTSAL"}`},
		{"bad date", `{"teamId":10,"writerProfileId":1,"title":"x","category":"TEAM","matchDate":"07.11.2026"}`},
		{"negative quota", `{"teamId":10,"writerProfileId":1,"title":"x","category":"TEAM","requiredPersonnel":-1}`},
		{"malformed json", `{"teamId":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/api/recruits", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	s.posting.AssertNotCalled(t, "CreatePosting", mock.Anything, mock.Anything)
}

func TestGetPostings_Filter(t *testing.T) {
	s := newServer(t)
	s.posting.On("GetPostings", mock.Anything,
		&entity.PostingFilter{TeamId: 10, Status: entity.PostStatusOpen, Category: entity.CategoryMatch},
		&entity.PaginationInput{Limit: 5, Offset: 10},
	).Return([]entity.PostingOutputModel{{Posting: entity.Posting{Id: 1}}}, nil)

	rec := s.do(http.MethodGet, "/api/recruits?teamId=10&status=OPEN&category=MATCH&limit=5&offset=10", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	s.posting.AssertExpectations(t)

	rec = s.do(http.MethodGet, "/api/recruits?limit=500", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPosting_NotFound(t *testing.T) {
	s := newServer(t)
	s.posting.On("GetPosting", mock.Anything, int64(7)).Return(nil, service.ErrPostNotFound)

	rec := s.do(http.MethodGet, "/api/recruits/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrPostNotFound.Error())

	rec = s.do(http.MethodGet, "/api/recruits/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchPosting(t *testing.T) {
	s := newServer(t)
	s.posting.On("UpdatePosting", mock.Anything, int64(3), mock.MatchedBy(func(p *entity.PostingPatch) bool {
		return p.Status != nil && *p.Status == entity.PostStatusClosed && p.Title == nil
	})).Return(&entity.PostingOutputModel{Posting: entity.Posting{Id: 3, Status: entity.PostStatusClosed}}, nil)
	s.posting.On("UpdatePosting", mock.Anything, int64(4), mock.Anything).Return(nil, service.ErrNoNewChanges)

	rec := s.do(http.MethodPatch, "/api/recruits/3", `{"status":"CLOSED"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPatch, "/api/recruits/4", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePosting(t *testing.T) {
	s := newServer(t)
	s.posting.On("DeletePosting", mock.Anything, int64(3)).Return(nil)
	s.posting.On("DeletePosting", mock.Anything, int64(4)).Return(errors.New("connection reset"))

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/recruits/3", "").Code)

	rec := s.do(http.MethodDelete, "/api/recruits/4", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestPatchPosting_CompletedIsFinal(t *testing.T) {
	s := newServer(t)
	s.posting.On("UpdatePosting", mock.Anything, int64(3), mock.Anything).Return(nil, service.ErrPostCompleted)

	rec := s.do(http.MethodPatch, "/api/recruits/3", `{"status":"OPEN"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrPostCompleted.Error())
}
