package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/service"
	"github.com/aidar/teamboard/internal/view"
)

// DashboardHandler обрабатывает главную страницу и JSON фрагменты секций
type DashboardHandler struct {
	dashboard *service.DashboardService
	users     *service.UserService
	teams     *service.TeamService
	groups    *service.GroupService
	pages     *Pages
	logger    *slog.Logger
}

// NewDashboardHandler создает новый DashboardHandler
func NewDashboardHandler(
	dashboard *service.DashboardService,
	users *service.UserService,
	teams *service.TeamService,
	groups *service.GroupService,
	pages *Pages,
	logger *slog.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		users:     users,
		teams:     teams,
		groups:    groups,
		pages:     pages,
		logger:    logger,
	}
}

// Index обрабатывает GET /?team=...&group=...
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	sel := service.Selection{
		TeamID:  h.queryID(r, "team"),
		GroupID: h.queryID(r, "group"),
	}

	d := h.dashboard.Build(r.Context(), sel)
	h.pages.Render(w, r, http.StatusOK, view.PageDashboard, view.NewDashboardPage(h.pages.Layout(r), d))
}

// UsersFragment обрабатывает GET /fragments/users
func (h *DashboardHandler) UsersFragment(w http.ResponseWriter, r *http.Request) {
	t := h.pages.Localizer(r)

	users, err := h.users.List(r.Context())
	h.logFailure(r, view.SectionUsers, err)

	RespondWithJSON(w, r, http.StatusOK, view.UserSection(
		view.SectionUsers, t("users.title"), users, err, "error.users", "users.empty", t,
	))
}

// TeamUsersFragment обрабатывает GET /fragments/teams/{teamID}/users
func (h *DashboardHandler) TeamUsersFragment(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}
	t := h.pages.Localizer(r)

	users, err := h.teams.Users(r.Context(), teamID)
	h.logFailure(r, view.SectionTeamUsers, err)

	RespondWithJSON(w, r, http.StatusOK, view.UserSection(
		view.SectionTeamUsers,
		t("teams.members", "name", nameParam(r, teamID)),
		users, err, "error.team_users", "teams.empty_members", t,
	))
}

// TeamGroupsFragment обрабатывает GET /fragments/teams/{teamID}/groups
func (h *DashboardHandler) TeamGroupsFragment(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}
	t := h.pages.Localizer(r)

	groups, err := h.teams.Groups(r.Context(), teamID)
	h.logFailure(r, view.SectionTeamGroups, err)

	RespondWithJSON(w, r, http.StatusOK, view.GroupSection(
		view.SectionTeamGroups,
		t("teams.groups", "name", nameParam(r, teamID)),
		teamID, groups, err, "error.team_groups", "teams.empty_groups", t,
	))
}

// GroupUsersFragment обрабатывает GET /fragments/groups/{groupID}/users
func (h *DashboardHandler) GroupUsersFragment(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	t := h.pages.Localizer(r)

	users, err := h.groups.Users(r.Context(), groupID)
	h.logFailure(r, view.SectionGroupUsers, err)

	RespondWithJSON(w, r, http.StatusOK, view.UserSection(
		view.SectionGroupUsers,
		t("groups.members", "name", nameParam(r, groupID)),
		users, err, "error.group_users", "groups.empty_members", t,
	))
}

// TeamGroupUsersFragment обрабатывает GET /fragments/teams/{teamID}/groups/{groupID}/users
func (h *DashboardHandler) TeamGroupUsersFragment(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	t := h.pages.Localizer(r)

	users, err := h.teams.GroupUsers(r.Context(), teamID, groupID)
	h.logFailure(r, view.SectionTeamGroupUsers, err)

	title := t("team_group.members",
		"team", view.DisplayName(r.URL.Query().Get("team_name"), teamID),
		"group", nameParam(r, groupID),
	)
	RespondWithJSON(w, r, http.StatusOK, view.UserSection(
		view.SectionTeamGroupUsers, title,
		users, err, "error.team_group_users", "team_group.empty_members", t,
	))
}

// queryID разбирает необязательный ID из query. Некорректное значение считается отсутствующим.
func (h *DashboardHandler) queryID(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	id, err := parseID(raw)
	if err != nil {
		h.logger.DebugContext(r.Context(), "Ignoring invalid selection", "param", name, "value", raw)
		return nil
	}
	return &id
}

func (h *DashboardHandler) logFailure(r *http.Request, section string, err error) {
	if err == nil {
		return
	}
	h.logger.ErrorContext(r.Context(), "Failed to load section", "section", section, "error", err)
}

// pathID разбирает ID из пути. При ошибке отвечает 400.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := parseID(chi.URLParam(r, name))
	if err != nil {
		HandleError(w, r, err)
		return 0, false
	}
	return id, true
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: %w", raw, domain.ErrValidation)
	}
	return id, nil
}

// nameParam возвращает название из параметра name или ID
func nameParam(r *http.Request, id int64) string {
	return view.DisplayName(r.URL.Query().Get("name"), id)
}
