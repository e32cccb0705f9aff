package httpapi

import (
	"net/http"

	"github.com/riskibarqy/prediction-league/internal/domain/teamstats"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type teamDTO struct {
	ID        int64  `json:"id"`
	LeagueID  *int64 `json:"league_id"`
	Name      string `json:"name"`
	LogoURL   string `json:"logo_url,omitempty"`
	Stadium   string `json:"stadium,omitempty"`
	Favourite bool   `json:"favourite"`
	UserAdded bool   `json:"user_added"`
}

type paginationDTO struct {
	Total     int `json:"total"`
	Page      int `json:"page"`
	PerPage   int `json:"per_page"`
	PageCount int `json:"page_count"`
}

type teamPageDTO struct {
	Items      []teamDTO     `json:"items"`
	Pagination paginationDTO `json:"pagination"`
}

type searchTeamRequest struct {
	TeamName string `json:"team_name" validate:"required,max=120"`
}

type searchTeamResponseDTO struct {
	Team  teamDTO `json:"team"`
	Added bool    `json:"added"`
}

type favouriteStateDTO struct {
	TeamID    int64 `json:"id"`
	Favourite bool  `json:"favourite"`
}

type teamStatsDTO struct {
	TeamID int64 `json:"team_id"`
	Played int   `json:"played"`
	Wins   int   `json:"wins"`
	Losses int   `json:"losses"`
	Draws  int   `json:"draws"`
}

func teamViewToDTO(view usecase.TeamView) teamDTO {
	return teamDTO{
		ID:        view.Team.ID,
		LeagueID:  view.Team.LeagueID,
		Name:      view.Team.Name,
		LogoURL:   view.Team.LogoURL,
		Stadium:   view.Team.Stadium,
		Favourite: view.Favourite,
		UserAdded: view.Team.UserAdded(),
	}
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	userID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := parseQueryInt(r, "page", 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	perPage, err := parseQueryInt(r, "per_page", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID, err := parseQueryInt64Ptr(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.ListTeams(ctx, usecase.ListTeamsInput{
		UserID:   userID,
		Page:     page,
		PerPage:  perPage,
		LeagueID: leagueID,
		Search:   r.URL.Query().Get("search"),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams.Items))
	for _, item := range teams.Items {
		items = append(items, teamViewToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, teamPageDTO{
		Items: items,
		Pagination: paginationDTO{
			Total:     teams.Total,
			Page:      teams.Page,
			PerPage:   teams.PerPage,
			PageCount: teams.PageCount,
		},
	})
}

func (h *Handler) SearchOrAddTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchOrAddTeam")
	defer span.End()

	userID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req searchTeamRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, added, err := h.teamService.SearchOrAddTeam(ctx, userID, req.TeamName)
	if err != nil {
		h.logger.WarnContext(ctx, "search or add team failed", "team_name", req.TeamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeSuccess(ctx, w, status, searchTeamResponseDTO{Team: teamViewToDTO(view), Added: added})
}

func (h *Handler) ListTeamMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMatches")
	defer span.End()

	teamID, err := parsePathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.teamService.ListMatchesForTeam(ctx, teamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list team matches failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewsToDTOs(matches))
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	teamID, err := parsePathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.teamService.TeamStats(ctx, teamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "team stats failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStatsToDTO(stats))
}

func teamStatsToDTO(stats teamstats.Record) teamStatsDTO {
	return teamStatsDTO{
		TeamID: stats.TeamID,
		Played: stats.Played,
		Wins:   stats.Wins,
		Losses: stats.Losses,
		Draws:  stats.Draws,
	}
}

func (h *Handler) AddFavourite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddFavourite")
	defer span.End()

	userID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := parsePathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.favouriteService.AddFavourite(ctx, userID, teamID); err != nil {
		h.logger.WarnContext(ctx, "add favourite failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, favouriteStateDTO{TeamID: teamID, Favourite: true})
}

func (h *Handler) RemoveFavourite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveFavourite")
	defer span.End()

	userID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := parsePathInt64(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.favouriteService.RemoveFavourite(ctx, userID, teamID); err != nil {
		h.logger.WarnContext(ctx, "remove favourite failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, favouriteStateDTO{TeamID: teamID, Favourite: false})
}
