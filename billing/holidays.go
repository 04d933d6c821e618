package billing

import (
	"sort"

	"timesheet/models"
)

// Italian public holidays, 2026-2027 only per product scope.
var italianHolidays = map[string]string{
	"2026-01-01": "Capodanno",
	"2026-01-06": "Epifania",
	"2026-04-05": "Pasqua",
	"2026-04-06": "Lunedì di Pasqua (Pasquetta)",
	"2026-04-25": "Liberazione Italia",
	"2026-05-01": "Festa del lavoro",
	"2026-06-02": "Festa della Repubblica Italia",
	"2026-08-15": "Ferragosto",
	"2026-10-04": "Festa di San Francesco d'Assisi",
	"2026-11-01": "Tutti i santi",
	"2026-12-08": "Immacolata Concezione",
	"2026-12-25": "Natale",
	"2026-12-26": "Santo Stefano",
	"2027-01-01": "Capodanno",
	"2027-01-06": "Epifania",
	"2027-03-28": "Pasqua",
	"2027-03-29": "Lunedì di Pasqua (Pasquetta)",
	"2027-04-25": "Liberazione Italia",
	"2027-05-01": "Festa del lavoro",
	"2027-06-02": "Festa della Repubblica Italia",
	"2027-08-15": "Ferragosto",
	"2027-10-04": "Festa di San Francesco d'Assisi",
	"2027-11-01": "Tutti i santi",
	"2027-12-08": "Immacolata Concezione",
	"2027-12-25": "Natale",
	"2027-12-26": "Santo Stefano",
}

// Holiday is a named public holiday.
type Holiday struct {
	Date models.Date `json:"date"`
	Name string      `json:"name"`
}

// HolidayName returns the holiday name for a date, if any.
func HolidayName(date models.Date) (string, bool) {
	name, ok := italianHolidays[date.String()]
	return name, ok
}

func IsHoliday(date models.Date) bool {
	_, ok := HolidayName(date)
	return ok
}

// HolidaysForYear lists the catalog's holidays for a year in date order.
// Years outside the catalog yield an empty list.
func HolidaysForYear(year int) []Holiday {
	keys := make([]string, 0, len(italianHolidays))
	for key := range italianHolidays {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	holidays := make([]Holiday, 0, 13)
	for _, key := range keys {
		date, err := models.ParseDate(key)
		if err != nil || date.Year() != year {
			continue
		}
		holidays = append(holidays, Holiday{Date: date, Name: italianHolidays[key]})
	}
	return holidays
}
