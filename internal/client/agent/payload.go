package agent

import (
	"fmt"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/notify"
	"github.com/Elias-Manica/push-notifications-poc/internal/config"
	"github.com/goccy/go-json"
)

type payload struct {
	notification        map[string]any
	notificationPayload map[string]any
	data                map[string]any
}

// decodePayload accepts any JSON object. A data section that is present but not an
// object makes the payload malformed; display sections of the wrong shape are
// ignored and the defaults apply.
func decodePayload(raw []byte) (*payload, error) {
	if len(raw) == 0 {
		return &payload{}, nil
	}

	obj := map[string]any{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	p := &payload{
		notification:        displaySection(obj, "notification"),
		notificationPayload: displaySection(obj, "notification_payload"),
	}
	var err error
	if p.data, err = section(obj, "data"); err != nil {
		return nil, err
	}
	return p, nil
}

func section(obj map[string]any, key string) (map[string]any, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrMalformedPayload, key, v)
	}
	return m, nil
}

func displaySection(obj map[string]any, key string) map[string]any {
	m, _ := obj[key].(map[string]any)
	return m
}

func (p *payload) display() notify.Notification {
	content := p.notification
	if content == nil {
		content = p.notificationPayload
	}

	title, _ := content["title"].(string)
	if title == "" {
		title = config.DefaultNotificationTitle
	}
	body, _ := content["body"].(string)
	if body == "" {
		body = config.DefaultNotificationBody
	}

	data := p.data
	if data == nil {
		data = map[string]any{}
	}

	return notify.Notification{
		Title: title,
		Body:  body,
		Icon:  config.NotificationIcon,
		Badge: config.NotificationIcon,
		Tag:   config.NotificationTag,
		Data:  data,
		Actions: []notify.Action{
			{Action: notify.ActionView, Title: "View", Icon: config.NotificationIcon},
			{Action: notify.ActionDismiss, Title: "Dismiss", Icon: config.NotificationIcon},
		},
	}
}
