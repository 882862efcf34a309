package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"slate/internal/continuity"
	"slate/internal/timeline"
)

type sceneView struct {
	Number     string `json:"number"`
	Heading    string `json:"heading"`
	TimeOfDay  string `json:"time_of_day"`
	StoryDay   int    `json:"story_day"`
	Timeline   string `json:"timeline"`
	Confidence string `json:"confidence"`
}

type dayView struct {
	Key             int      `json:"key"`
	Scenes          []string `json:"scenes"`
	DetectedFrom    []string `json:"detected_from"`
	ManuallyCreated bool     `json:"manually_created"`
	Reordered       bool     `json:"reordered"`
	Elements        []string `json:"elements,omitempty"`
}

type timelineView struct {
	Timeline string    `json:"timeline"`
	Days     []dayView `json:"days"`
}

type elementView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Timeline    string `json:"timeline"`
	CharacterID string `json:"character_id,omitempty"`
	StartDay    int    `json:"start_day"`
	EndDay      int    `json:"end_day"`
	StartScene  string `json:"start_scene"`
	EndScene    string `json:"end_scene"`
	Stale       bool   `json:"stale,omitempty"`
}

func sceneViews(scenes []timeline.Scene) []sceneView {
	views := make([]sceneView, 0, len(scenes))
	for _, s := range scenes {
		views = append(views, sceneView{
			Number:     s.Number,
			Heading:    s.Heading,
			TimeOfDay:  string(s.TimeOfDay),
			StoryDay:   s.StoryDay,
			Timeline:   string(s.Timeline),
			Confidence: string(s.Confidence),
		})
	}
	return views
}

func timelineViewOf(store timeline.Store, elements []continuity.Element) timelineView {
	view := timelineView{Timeline: string(store.Type)}
	for _, day := range store.Days {
		view.Days = append(view.Days, dayView{
			Key:             day.Key,
			Scenes:          append([]string{}, day.Scenes...),
			DetectedFrom:    append([]string{}, day.DetectedFrom...),
			ManuallyCreated: day.ManuallyCreated,
			Reordered:       day.Reordered,
			Elements:        continuity.ElementsForDay(elements, store.Type, day.Key),
		})
	}
	return view
}

func elementViewOf(v continuity.VisibleElement) elementView {
	return elementView{
		ID:          v.Element.ID,
		Name:        v.Element.Name,
		Type:        string(v.Element.Type),
		Timeline:    string(v.Element.Timeline),
		CharacterID: v.Element.CharacterID,
		StartDay:    v.DisplayStartDay,
		EndDay:      v.DisplayEndDay,
		StartScene:  v.Element.StartScene,
		EndScene:    v.Element.EndScene,
		Stale:       v.Stale,
	}
}

func sceneRows(scenes []timeline.Scene) [][]string {
	rows := make([][]string, 0, len(scenes))
	for _, s := range scenes {
		day := "-"
		if s.Assigned() {
			day = fmt.Sprintf("%d", s.StoryDay)
		}
		rows = append(rows, []string{
			s.Number,
			s.Heading,
			string(s.TimeOfDay),
			day,
			string(s.Timeline),
			string(s.Confidence),
		})
	}
	return rows
}

func dayRows(store timeline.Store) [][]string {
	rows := make([][]string, 0, len(store.Days))
	for _, day := range store.Days {
		var flags []string
		if day.ManuallyCreated {
			flags = append(flags, "manual")
		}
		if day.Reordered {
			flags = append(flags, "reordered")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", day.Key),
			strings.Join(day.Scenes, ", "),
			strings.Join(day.DetectedFrom, ", "),
			strings.Join(flags, ", "),
		})
	}
	return rows
}

func elementRows(visible []continuity.VisibleElement) [][]string {
	titler := cases.Title(language.Und)
	rows := make([][]string, 0, len(visible))
	for _, v := range visible {
		days := fmt.Sprintf("%d-%d", v.DisplayStartDay, v.DisplayEndDay)
		stale := ""
		if v.Stale {
			stale = "stale"
		}
		rows = append(rows, []string{
			shortID(v.Element.ID),
			v.Element.Name,
			titler.String(strings.ReplaceAll(string(v.Element.Type), "_", " ")),
			v.Element.CharacterID,
			days,
			fmt.Sprintf("%s-%s", v.Element.StartScene, v.Element.EndScene),
			stale,
		})
	}
	return rows
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
