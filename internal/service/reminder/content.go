package reminder

import "fmt"

// Message copy escalates over the reminder sequence:
// day 1 gentle, day 2 friendly persistence, day 3 slight urgency,
// day 4 direct, day 5 final check-in. Day numbers beyond 5 reuse
// the final copy.

const (
	TitleDefault = "💧 Gentle reminder"
	TitleFinal   = "💧 Final check-in"

	SnoozeOption4Hours   = "In 4 hours"
	SnoozeOptionTomorrow = "Tomorrow morning"

	ButtonWater          = "Water"
	ButtonWatered        = "Watered"
	ButtonLater          = "Later"
	ButtonViewPlants     = "View plants"
	ButtonMarkAllWatered = "Mark all as watered"
)

func Title(reminderDay int) string {
	if reminderDay >= 5 {
		return TitleFinal
	}
	return TitleDefault
}

func SinglePlantMessage(plantName string, reminderDay int) string {
	switch reminderDay {
	case 1:
		return fmt.Sprintf("Your %s would benefit from watering today.", plantName)
	case 2:
		return fmt.Sprintf("Your %s is still waiting for some water.", plantName)
	case 3:
		return fmt.Sprintf("Your %s could really use some water today.", plantName)
	case 4:
		return fmt.Sprintf("Your %s needs watering — it's been a few days.", plantName)
	default:
		return fmt.Sprintf("Watering still pending for %s.", plantName)
	}
}

// MultiplePlantsMessage renders the batched copy. capped appends "+" to the
// other-plants count when the real count exceeded the display cap.
func MultiplePlantsMessage(primaryPlant string, otherCount, reminderDay int, capped bool) string {
	suffix := ""
	if capped {
		suffix = "+"
	}
	switch reminderDay {
	case 1:
		return fmt.Sprintf("Your %s and %d%s other plants would benefit from watering today.", primaryPlant, otherCount, suffix)
	case 2:
		return fmt.Sprintf("Your %s and %d%s other plants are still waiting for water.", primaryPlant, otherCount, suffix)
	case 3:
		return fmt.Sprintf("Your %s and %d%s other plants could really use some water.", primaryPlant, otherCount, suffix)
	case 4:
		return fmt.Sprintf("Your %s and %d%s other plants need watering.", primaryPlant, otherCount, suffix)
	default:
		return fmt.Sprintf("Watering still pending for %s and %d%s other plants.", primaryPlant, otherCount, suffix)
	}
}

func ActionConfirmed(plantName string) string {
	return fmt.Sprintf("%s care logged.", plantName)
}

func ActionConfirmedAll() string {
	return "All plants marked as watered."
}
