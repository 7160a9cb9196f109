package mail

type HotLeadEmailData struct {
	Name  string
	Email string
	Score int
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
