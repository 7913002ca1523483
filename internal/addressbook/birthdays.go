package addressbook

import (
	"time"

	"github.com/username/contact-book/pkg/dateutil"
)

// DefaultUpcomingDays is the default birthday window in days
const DefaultUpcomingDays = 7

// UpcomingBirthday is one entry of the upcoming-birthdays report.
// Date is the day to congratulate on, already moved off the weekend.
type UpcomingBirthday struct {
	Name     string    `json:"name" yaml:"name"`
	Birthday string    `json:"birthday" yaml:"birthday"`
	Date     time.Time `json:"-" yaml:"-"`
}

// UpcomingBirthdays reports birthdays within the next days days, counting from today
func (b *AddressBook) UpcomingBirthdays(days int) []UpcomingBirthday {
	return b.UpcomingBirthdaysAt(dateutil.Today(), days)
}

// UpcomingBirthdaysAt reports birthdays whose next occurrence is between today
// and today+days inclusive. The window test uses the real occurrence; the
// reported date is moved from Saturday or Sunday to the following Monday.
func (b *AddressBook) UpcomingBirthdaysAt(today time.Time, days int) []UpcomingBirthday {
	today = dateutil.StartOfDay(today)
	upcoming := []UpcomingBirthday{}

	for _, record := range b.Records() {
		if record.birthday == nil {
			continue
		}

		born := record.birthday.Date()
		next := dateutil.Anniversary(born, today.Year(), today.Location())
		if next.Before(today) {
			next = dateutil.Anniversary(born, today.Year()+1, today.Location())
		}

		delta := dateutil.DaysBetween(today, next)
		if delta < 0 || delta > days {
			continue
		}

		congratulate := dateutil.AdjustForWeekend(next)
		upcoming = append(upcoming, UpcomingBirthday{
			Name:     record.name.value,
			Birthday: dateutil.FormatDate(congratulate),
			Date:     congratulate,
		})
	}

	return upcoming
}
