package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"sportshub-recruit-api/internal/entity"

	"go.uber.org/zap"
)

type TeamClient struct {
	*httpClient
}

func NewTeamClient(opts Options, log *zap.Logger) *TeamClient {
	return &TeamClient{newHTTPClient(opts, log.Named("team_client"))}
}

type memberPayload struct {
	ProfileId *int64 `json:"profileId"`
	Id        *struct {
		ProfileId int64 `json:"profileId"`
	} `json:"id"`
	RoleInTeam string `json:"roleInTeam"`
	IsActive   *bool  `json:"isActive"`
}

func (m memberPayload) toEntity() (entity.TeamMember, bool) {
	// a member without isActive is treated as inactive
	member := entity.TeamMember{RoleInTeam: entity.TeamRole(m.RoleInTeam), IsActive: m.IsActive != nil && *m.IsActive}

	switch {
	case m.ProfileId != nil:
		member.ProfileId = *m.ProfileId
	case m.Id != nil:
		member.ProfileId = m.Id.ProfileId
	default:
		return member, false
	}

	return member, true
}

// decodeMembers accepts either a bare array or a page object with a content array.
func decodeMembers(raw json.RawMessage) ([]entity.TeamMember, error) {
	var payload []memberPayload
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, fmt.Errorf("decode members: %w", err)
		}
	} else {
		var page struct {
			Content []memberPayload `json:"content"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("decode members page: %w", err)
		}
		payload = page.Content
	}

	members := make([]entity.TeamMember, 0, len(payload))
	for _, p := range payload {
		if m, ok := p.toEntity(); ok {
			members = append(members, m)
		}
	}

	return members, nil
}

func (c *TeamClient) GetMembers(ctx context.Context, teamId int64) ([]entity.TeamMember, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/teams/%d/members", teamId), nil, &raw); err != nil {
		return nil, err
	}

	return decodeMembers(raw)
}

func (c *TeamClient) AddMember(ctx context.Context, teamId int64, profileId int64, role entity.TeamRole) error {
	body := map[string]any{"profileId": profileId, "roleInTeam": role}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/teams/%d/members", teamId), body, nil)
}

func (c *TeamClient) AddScheduleEntry(ctx context.Context, teamId int64, matchId int64) error {
	body := map[string]any{"matchId": matchId, "eventType": entity.ScheduleEventMatch}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/teams/%d/schedules", teamId), body, nil)
}
