package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aidar/teamboard/internal/domain"
)

// Result holds the outcome of one independent upstream fetch
type Result[T any] struct {
	Items []T
	Err   error
}

// Empty reports a successful fetch that returned nothing
func (r *Result[T]) Empty() bool {
	return r.Err == nil && len(r.Items) == 0
}

// Selection describes which team and/or group the user drilled into
type Selection struct {
	TeamID  *int64
	GroupID *int64
}

// Dashboard is the per-request view state of the main page.
// Drill-down results are nil when the matching selection is absent.
// TeamGroupUsers is also nil when the selected group is not one of the team's groups.
type Dashboard struct {
	Teams  Result[domain.Team]
	Groups Result[domain.Group]
	Users  Result[domain.User]

	SelectedTeam  *domain.Team
	SelectedGroup *domain.Group

	TeamUsers      *Result[domain.User]
	TeamGroups     *Result[domain.Group]
	TeamGroupUsers *Result[domain.User]
	GroupUsers     *Result[domain.User]
}

// DashboardService assembles the main page from independent upstream calls
type DashboardService struct {
	users  *UserService
	teams  *TeamService
	groups *GroupService
	logger *slog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(users *UserService, teams *TeamService, groups *GroupService, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		users:  users,
		teams:  teams,
		groups: groups,
		logger: logger,
	}
}

// Build fetches every section needed for the selection concurrently.
// A failure in one section is logged and stored in that section only.
func (s *DashboardService) Build(ctx context.Context, sel Selection) *Dashboard {
	d := &Dashboard{}

	// Each goroutine writes only its own field and always returns nil,
	// so one failing section never cancels the others
	var g errgroup.Group

	g.Go(func() error {
		d.Teams.Items, d.Teams.Err = s.teams.List(ctx)
		s.logFailure(ctx, "teams", d.Teams.Err)
		return nil
	})
	g.Go(func() error {
		d.Groups.Items, d.Groups.Err = s.groups.List(ctx)
		s.logFailure(ctx, "groups", d.Groups.Err)
		return nil
	})
	g.Go(func() error {
		d.Users.Items, d.Users.Err = s.users.List(ctx)
		s.logFailure(ctx, "users", d.Users.Err)
		return nil
	})

	if sel.TeamID != nil {
		teamID := *sel.TeamID
		d.TeamUsers = &Result[domain.User]{}
		d.TeamGroups = &Result[domain.Group]{}

		g.Go(func() error {
			d.TeamUsers.Items, d.TeamUsers.Err = s.teams.Users(ctx, teamID)
			s.logFailure(ctx, "team_users", d.TeamUsers.Err)
			return nil
		})
		// Team-group members are fetched only for a group listed under the team
		g.Go(func() error {
			d.TeamGroups.Items, d.TeamGroups.Err = s.teams.Groups(ctx, teamID)
			s.logFailure(ctx, "team_groups", d.TeamGroups.Err)

			if sel.GroupID == nil || d.TeamGroups.Err != nil {
				return nil
			}
			groupID := *sel.GroupID
			if _, ok := domain.FindGroup(d.TeamGroups.Items, groupID); !ok {
				s.logger.DebugContext(ctx, "Selected group is not in team", "team_id", teamID, "group_id", groupID)
				return nil
			}

			res := &Result[domain.User]{}
			res.Items, res.Err = s.teams.GroupUsers(ctx, teamID, groupID)
			s.logFailure(ctx, "team_group_users", res.Err)
			d.TeamGroupUsers = res
			return nil
		})
	} else if sel.GroupID != nil {
		groupID := *sel.GroupID
		d.GroupUsers = &Result[domain.User]{}
		g.Go(func() error {
			d.GroupUsers.Items, d.GroupUsers.Err = s.groups.Users(ctx, groupID)
			s.logFailure(ctx, "group_users", d.GroupUsers.Err)
			return nil
		})
	}

	_ = g.Wait()

	d.resolveSelection(sel)
	return d
}

// resolveSelection looks up selected names in the fetched lists.
// When the lists failed the selection keeps only its ID.
func (d *Dashboard) resolveSelection(sel Selection) {
	if sel.TeamID != nil {
		team, ok := domain.FindTeam(d.Teams.Items, *sel.TeamID)
		if !ok {
			team = domain.Team{ID: *sel.TeamID}
		}
		d.SelectedTeam = &team
	}

	if sel.GroupID != nil {
		var (
			group domain.Group
			ok    bool
		)
		if d.TeamGroups != nil {
			group, ok = domain.FindGroup(d.TeamGroups.Items, *sel.GroupID)
		}
		if !ok {
			group, ok = domain.FindGroup(d.Groups.Items, *sel.GroupID)
		}
		if !ok {
			group = domain.Group{ID: *sel.GroupID}
		}
		d.SelectedGroup = &group
	}
}

func (s *DashboardService) logFailure(ctx context.Context, section string, err error) {
	if err == nil {
		return
	}
	s.logger.ErrorContext(ctx, "Failed to load section", "section", section, "error", err)
}
