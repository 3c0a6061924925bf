// Package email sends the notification emails the site raises when a
// visitor submits the contact or appointment form.
//
// New picks the sender from Config: Postmark when both tokens are set,
// otherwise DevSender, which writes each message as an HTML file plus JSON
// metadata under DevDir.
//
//	sender, err := email.New(cfg)
//	html, err := templates.Render(ctx, templates.ContactNotification(data))
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   cfg.SupportEmail,
//	    Subject:  "New contact request",
//	    BodyHTML: html,
//	    Tag:      "contact",
//	})
package email
