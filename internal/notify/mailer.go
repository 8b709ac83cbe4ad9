// Package notify は注文確認メール。送信失敗は注文を失敗させない（呼び出し側でログ）。
package notify

import (
	"bytes"
	"fmt"
	"net/smtp"
	"text/template"
)

type Mailer interface {
	SendOrderConfirmation(to string, name string, orderID int64) error
}

var orderMailTmpl = template.Must(template.New("notify_order").Parse(
	`Hello {{.Name}},

Your order #{{.OrderID}} has been placed.
We will notify you when it ships.

Thanks for shopping with us!
`))

type SMTPMailer struct {
	Host string
	Port string
	From string
}

func NewSMTPMailer(host, port, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, From: from}
}

func (m *SMTPMailer) SendOrderConfirmation(to string, name string, orderID int64) error {
	var body bytes.Buffer
	err := orderMailTmpl.Execute(&body, struct {
		Name    string
		OrderID int64
	}{Name: name, OrderID: orderID})
	if err != nil {
		return err
	}

	msg := "From: " + m.From + "\r\n" +
		"To: " + to + "\r\n" +
		fmt.Sprintf("Subject: Your order #%d\r\n", orderID) +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n" +
		body.String()

	// ローカルSMTP（MailHog等）前提でauthなし
	return smtp.SendMail(m.Host+":"+m.Port, nil, m.From, []string{to}, []byte(msg))
}

var _ Mailer = (*SMTPMailer)(nil)
