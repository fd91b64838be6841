package main

// FormPageData holds the data needed to render the email form page.
type FormPageData struct {
	Error            string
	RecipientName    string
	RecipientRole    string
	RecipientCompany string
	Intent           string
	Tone             string
	CTA              string
	Intents          []string
}

// ResultPageData holds the data needed to render the generated email page.
type ResultPageData struct {
	RecipientName    string
	RecipientCompany string
	Email            string
	DownloadName     string
}
