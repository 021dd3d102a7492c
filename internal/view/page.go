package view

import (
	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/service"
)

// Card представляет карточку команды или группы
type Card struct {
	ID       int64
	Name     string
	Href     string
	Selected bool
}

// Layout содержит общие для всех страниц данные
type Layout struct {
	Lang        string
	ToggleLang  string
	T           Localize
	Session     *domain.Session
	CurrentPath string
}

// DashboardPage модель главной страницы
type DashboardPage struct {
	Layout
	TeamCards     []Card
	GroupCards    []Card
	TeamSections  []Section
	GroupSections []Section
	Users         Section
}

// AuthPage модель страниц входа и регистрации
type AuthPage struct {
	Layout
	Error    string
	Username string
	Email    string
}

// NewDashboardPage строит модель главной страницы из собранного состояния
func NewDashboardPage(layout Layout, d *service.Dashboard) *DashboardPage {
	t := layout.T
	page := &DashboardPage{Layout: layout}

	var selectedTeamID, selectedGroupID int64
	if d.SelectedTeam != nil {
		selectedTeamID = d.SelectedTeam.ID
	}
	if d.SelectedGroup != nil {
		selectedGroupID = d.SelectedGroup.ID
	}

	// Ошибки загрузки списков команд и групп только логируются: карточек просто нет
	for _, team := range d.Teams.Items {
		page.TeamCards = append(page.TeamCards, Card{
			ID:       team.ID,
			Name:     team.Name,
			Href:     TeamHref(team.ID),
			Selected: team.ID == selectedTeamID,
		})
	}
	for _, group := range d.Groups.Items {
		page.GroupCards = append(page.GroupCards, Card{
			ID:       group.ID,
			Name:     group.Name,
			Href:     GroupHref(group.ID),
			Selected: group.ID == selectedGroupID && d.SelectedTeam == nil,
		})
	}

	if d.SelectedTeam != nil {
		teamName := DisplayName(d.SelectedTeam.Name, d.SelectedTeam.ID)

		if d.TeamUsers != nil {
			page.TeamSections = append(page.TeamSections, UserSection(
				SectionTeamUsers,
				t("teams.members", "name", teamName),
				d.TeamUsers.Items, d.TeamUsers.Err,
				"error.team_users", "teams.empty_members", t,
			))
		}
		if d.TeamGroups != nil {
			page.TeamSections = append(page.TeamSections, GroupSection(
				SectionTeamGroups,
				t("teams.groups", "name", teamName),
				d.SelectedTeam.ID,
				d.TeamGroups.Items, d.TeamGroups.Err,
				"error.team_groups", "teams.empty_groups", t,
			))
		}
		if d.TeamGroupUsers != nil && d.SelectedGroup != nil {
			page.TeamSections = append(page.TeamSections, UserSection(
				SectionTeamGroupUsers,
				t("team_group.members", "team", teamName, "group", DisplayName(d.SelectedGroup.Name, d.SelectedGroup.ID)),
				d.TeamGroupUsers.Items, d.TeamGroupUsers.Err,
				"error.team_group_users", "team_group.empty_members", t,
			))
		}
	}

	if d.GroupUsers != nil && d.SelectedGroup != nil {
		page.GroupSections = append(page.GroupSections, UserSection(
			SectionGroupUsers,
			t("groups.members", "name", DisplayName(d.SelectedGroup.Name, d.SelectedGroup.ID)),
			d.GroupUsers.Items, d.GroupUsers.Err,
			"error.group_users", "groups.empty_members", t,
		))
	}

	page.Users = UserSection(
		SectionUsers,
		t("users.title"),
		d.Users.Items, d.Users.Err,
		"error.users", "users.empty", t,
	)

	return page
}
