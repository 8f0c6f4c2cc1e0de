package controllers

import "github.com/datallboy/mvnsync/internal/domain"

type HealthResponse struct {
	Status  string `json:"status"`
	History bool   `json:"history"`
}

type RunListResponse struct {
	Runs []*domain.Run `json:"runs"`
}

type RunDetailResponse struct {
	Run    *domain.Run     `json:"run"`
	Events []*domain.Event `json:"events"`
}

type DirsResponse struct {
	Instrument string   `json:"instrument"`
	BaseURL    string   `json:"baseUrl"`
	Dirs       []string `json:"dirs"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
