package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskSMSDeliver = "sms.deliver"

const TaskEmailDeliver = "email.deliver"

type SMSDeliverPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type EmailDeliverPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func NewSMSDeliverTask(payload SMSDeliverPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSMSDeliver, data), nil
}

func ParseSMSDeliverPayload(task *asynq.Task) (SMSDeliverPayload, error) {
	var payload SMSDeliverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return SMSDeliverPayload{}, err
	}
	return payload, nil
}

func NewEmailDeliverTask(payload EmailDeliverPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskEmailDeliver, data), nil
}

func ParseEmailDeliverPayload(task *asynq.Task) (EmailDeliverPayload, error) {
	var payload EmailDeliverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return EmailDeliverPayload{}, err
	}
	return payload, nil
}
