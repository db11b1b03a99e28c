package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/anyango/dev_circle/notifications"
)

// SendSessionReminders emails both parties of sessions starting in roughly
// one hour. Runs every 5 minutes; the 5-minute window keeps reminders from
// repeating.
func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingSessions []models.Session
	err := database.DB.
		Preload("Mentor.User").
		Preload("Mentee").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.SessionScheduled, lowerBound, upperBound).
		Find(&upcomingSessions).Error
	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	for _, session := range upcomingSessions {
		log.Printf("Sending reminder for session ID: %s", session.ID)

		link := "your dashboard"
		if session.MeetingLink != nil {
			link = fmt.Sprintf("<a href='%s'>Join Session</a>", *session.MeetingLink)
		}
		emailSubject := "Reminder: Your Mentorship Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Your mentorship session is scheduled to start at %s.</p><p><b>Meeting Link:</b> %s</p>",
			session.StartTime.Format(time.Kitchen),
			link,
		)

		go notifications.SendEmail(session.Mentee.Name, session.Mentee.Email, emailSubject, emailBody)
		go notifications.SendEmail(session.Mentor.User.Name, session.Mentor.User.Email, emailSubject, emailBody)
	}
}
