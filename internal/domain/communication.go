package domain

import "time"

type Direction string

const (
	DirectionInbound  Direction = "INBOUND"
	DirectionOutbound Direction = "OUTBOUND"
)

type CallStatus string

const (
	CallStatusAnswered  CallStatus = "ANSWERED"
	CallStatusMissed    CallStatus = "MISSED"
	CallStatusVoicemail CallStatus = "VOICEMAIL"
)

type Call struct {
	ID              string
	Direction       Direction
	Status          CallStatus
	DurationSeconds int
	CreatedAt       time.Time
}

type TextStatus string

const (
	TextStatusSent      TextStatus = "SENT"
	TextStatusDelivered TextStatus = "DELIVERED"
	TextStatusFailed    TextStatus = "FAILED"
)

type TextMessage struct {
	ID        string
	Direction Direction
	Status    TextStatus
	CreatedAt time.Time
}

// Email carrega opcionalmente o registro de engajamento (abertura/clique) do provedor
type Email struct {
	ID         string
	Subject    string
	Status     string
	Engagement *EmailEngagement
	CreatedAt  time.Time
}

type EmailEngagement struct {
	OpenedAt  *time.Time
	ClickedAt *time.Time
}

type Notification struct {
	ID        string
	Channel   string
	Read      bool
	CreatedAt time.Time
}

type Announcement struct {
	ID        string
	Title     string
	Active    bool
	Views     int
	CreatedAt time.Time
}

type CommunicationMetrics struct {
	Period        PeriodToken         `json:"period"`
	DateRange     DateRange           `json:"dateRange"`
	Calls         CallMetrics         `json:"calls"`
	Texts         TextMetrics         `json:"texts"`
	Emails        EmailMetrics        `json:"emails"`
	Notifications NotificationMetrics `json:"notifications"`
	Announcements AnnouncementMetrics `json:"announcements"`
}

type CallMetrics struct {
	Total           int     `json:"total"`
	Inbound         int     `json:"inbound"`
	Outbound        int     `json:"outbound"`
	Answered        int     `json:"answered"`
	Missed          int     `json:"missed"`
	Voicemail       int     `json:"voicemail"`
	AnswerRate      float64 `json:"answerRate"`
	TotalDuration   int     `json:"totalDuration"`
	AverageDuration float64 `json:"averageDuration"`
}

type TextMetrics struct {
	Total        int     `json:"total"`
	Inbound      int     `json:"inbound"`
	Outbound     int     `json:"outbound"`
	Delivered    int     `json:"delivered"`
	Failed       int     `json:"failed"`
	DeliveryRate float64 `json:"deliveryRate"`
}

// EmailMetrics: as taxas de abertura e clique usam como base apenas os e-mails
// que possuem registro de engajamento, não o total enviado.
type EmailMetrics struct {
	Total          int     `json:"total"`
	WithEngagement int     `json:"withEngagement"`
	Opened         int     `json:"opened"`
	Clicked        int     `json:"clicked"`
	OpenRate       float64 `json:"openRate"`
	ClickRate      float64 `json:"clickRate"`
}

type NotificationMetrics struct {
	Total    int     `json:"total"`
	Read     int     `json:"read"`
	Unread   int     `json:"unread"`
	ReadRate float64 `json:"readRate"`
}

type AnnouncementMetrics struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	TotalViews int `json:"totalViews"`
}
