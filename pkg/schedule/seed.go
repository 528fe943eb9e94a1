package schedule

import (
	"time"

	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/mission"
)

// DemoMissions returns the demonstration timeline for the given child,
// scheduled for today.
func DemoMissions(childID string) []mission.Mission {
	today := dates.Today()
	return []mission.Mission{
		{
			ID: "1", ChildID: childID, Date: today, Time: "08:00 AM",
			Title: "Breakfast", Description: "Yogurt with granola and honey. Ensure milk is organic.",
			Status: mission.StatusCompleted, Icon: "🥣", Category: mission.CategoryFood,
			Repeat: mission.RepeatDaily,
		},
		{
			ID: "2", ChildID: childID, Date: today, Time: "10:00 AM",
			Title: "School Drop", Description: "Ensure bag has the extra mask and sanitizer.",
			Status: mission.StatusCompleted, Icon: "🚌", Category: mission.CategorySchool,
			Repeat: mission.RepeatCustom,
			RepeatDays: []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
			},
		},
		{
			ID: "3", ChildID: childID, Date: today, Time: "01:00 PM",
			Title: "Lunch", Description: "Nanny to serve Paneer Paratha with curd.",
			Status: mission.StatusPending, Icon: "🥘", Category: mission.CategoryFood,
			Repeat: mission.RepeatDaily,
		},
		{
			ID: "4", ChildID: childID, Date: today, Time: "04:00 PM",
			Title: "Medicine", Description: "Zincovit 5ml after milk intake.",
			Status: mission.StatusPending, Icon: "💊", Category: mission.CategoryMeds,
			Repeat: mission.RepeatOnce,
		},
		{
			ID: "5", ChildID: childID, Date: today, Time: "06:00 PM",
			Title: "Park Playtime", Description: "Meeting friends at the local park for 1 hour.",
			Status: mission.StatusPending, Icon: "🛝", Category: mission.CategoryPlay,
			Repeat: mission.RepeatOnce,
		},
	}
}
