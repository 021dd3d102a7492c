// Package view содержит модели отображения страниц и HTML шаблоны.
package view

import (
	"fmt"
	"strconv"

	"github.com/aidar/teamboard/internal/domain"
)

// Localize переводит ключ на язык текущего запроса
type Localize func(key string, args ...string) string

// HTML id секций страницы
const (
	SectionUsers          = "users"
	SectionTeamUsers      = "team-users"
	SectionTeamGroups     = "team-groups"
	SectionGroupUsers     = "group-users"
	SectionTeamGroupUsers = "team-group-users"
)

// Cell представляет ячейку таблицы, опционально со ссылкой
type Cell struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

// Section представляет блок страницы: ошибка, пустой список или таблица
type Section struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Error     string   `json:"error,omitempty"`
	EmptyText string   `json:"empty_text"`
	Columns   []string `json:"columns"`
	Rows      [][]Cell `json:"rows"`
}

// Empty возвращает true если данные получены, но список пуст
func (s Section) Empty() bool {
	return s.Error == "" && len(s.Rows) == 0
}

// UserSection строит секцию с таблицей пользователей
func UserSection(id, title string, users []domain.User, err error, errKey, emptyKey string, t Localize) Section {
	s := Section{
		ID:        id,
		Title:     title,
		EmptyText: t(emptyKey),
		Columns: []string{
			t("column.id"),
			t("column.username"),
			t("column.email"),
			t("column.team_id"),
			t("column.group_id"),
		},
		Rows: [][]Cell{},
	}
	if err != nil {
		s.Error = t(errKey)
		return s
	}

	for _, u := range users {
		s.Rows = append(s.Rows, []Cell{
			{Text: strconv.FormatInt(u.ID, 10)},
			{Text: u.Username},
			{Text: u.Email},
			{Text: optionalID(u.TeamID)},
			{Text: optionalID(u.GroupID)},
		})
	}
	return s
}

// GroupSection строит секцию с группами команды. Название группы ведет на ее участников в команде.
func GroupSection(id, title string, teamID int64, groups []domain.Group, err error, errKey, emptyKey string, t Localize) Section {
	s := Section{
		ID:        id,
		Title:     title,
		EmptyText: t(emptyKey),
		Columns:   []string{t("column.id"), t("column.name")},
		Rows:      [][]Cell{},
	}
	if err != nil {
		s.Error = t(errKey)
		return s
	}

	for _, g := range groups {
		s.Rows = append(s.Rows, []Cell{
			{Text: strconv.FormatInt(g.ID, 10)},
			{Text: g.Name, Href: TeamGroupHref(teamID, g.ID)},
		})
	}
	return s
}

// DisplayName возвращает имя или ID, если имя неизвестно
func DisplayName(name string, id int64) string {
	if name != "" {
		return name
	}
	return strconv.FormatInt(id, 10)
}

// TeamHref возвращает ссылку на страницу с выбранной командой
func TeamHref(teamID int64) string {
	return fmt.Sprintf("/?team=%d", teamID)
}

// GroupHref возвращает ссылку на страницу с выбранной группой
func GroupHref(groupID int64) string {
	return fmt.Sprintf("/?group=%d", groupID)
}

// TeamGroupHref возвращает ссылку на участников группы внутри команды
func TeamGroupHref(teamID, groupID int64) string {
	return fmt.Sprintf("/?team=%d&group=%d", teamID, groupID)
}

func optionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
