package httpapi

import (
	"net/http"

	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type matchDTO struct {
	ID           int64   `json:"id"`
	HomeTeamID   *int64  `json:"home_team_id"`
	AwayTeamID   *int64  `json:"away_team_id"`
	HomeTeamName string  `json:"home_team_name,omitempty"`
	AwayTeamName string  `json:"away_team_name,omitempty"`
	Date         string  `json:"date"`
	Result       *string `json:"result"`
}

type matchPageDTO struct {
	Items      []matchDTO    `json:"items"`
	Pagination paginationDTO `json:"pagination"`
}

type importMatchesRequest struct {
	TeamName string `json:"team_name" validate:"required,max=120"`
}

type importMatchesResponseDTO struct {
	Inserted   int `json:"inserted"`
	TotalFound int `json:"total_found"`
}

type leagueDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country,omitempty"`
	Website     string `json:"website,omitempty"`
	Competition string `json:"competition,omitempty"`
}

func matchViewToDTO(view usecase.MatchView) matchDTO {
	return matchDTO{
		ID:           view.Match.ID,
		HomeTeamID:   view.Match.HomeTeamID,
		AwayTeamID:   view.Match.AwayTeamID,
		HomeTeamName: view.HomeTeamName,
		AwayTeamName: view.AwayTeamName,
		Date:         view.Match.Date,
		Result:       view.Match.Result,
	}
}

func matchViewsToDTOs(views []usecase.MatchView) []matchDTO {
	items := make([]matchDTO, 0, len(views))
	for _, view := range views {
		items = append(items, matchViewToDTO(view))
	}
	return items
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

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
	teamID, err := parseQueryInt64Ptr(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListMatches(ctx, usecase.ListMatchesInput{
		Page:     page,
		PerPage:  perPage,
		LeagueID: leagueID,
		TeamID:   teamID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchPageDTO{
		Items: matchViewsToDTOs(matches.Items),
		Pagination: paginationDTO{
			Total:     matches.Total,
			Page:      matches.Page,
			PerPage:   matches.PerPage,
			PageCount: matches.PageCount,
		},
	})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := parsePathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(view))
}

func (h *Handler) ListRelevantMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRelevantMatches")
	defer span.End()

	matches, err := h.matchService.ListRelevantMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list relevant matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewsToDTOs(matches))
}

func (h *Handler) ImportMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportMatches")
	defer span.End()

	var req importMatchesRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.ingestionService.ImportMatchesForTeam(ctx, req.TeamName)
	if err != nil {
		h.logger.WarnContext(ctx, "import matches failed", "team_name", req.TeamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importMatchesResponseDTO{
		Inserted:   result.Inserted,
		TotalFound: result.TotalFound,
	})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, item := range leagues {
		items = append(items, leagueDTO{
			ID:          item.ID,
			Name:        item.Name,
			Country:     item.Country,
			Website:     item.Website,
			Competition: item.Competition,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
