package model

import "time"

// ProjectInput is the editable part of a project. It is the request body for
// both create and update. Image fields take absolute URLs or paths returned
// by the upload endpoint.
type ProjectInput struct {
	Title         string   `json:"title" bson:"title" validate:"required,max=200"`
	Subtitle      string   `json:"subtitle" bson:"subtitle" validate:"required,max=200"`
	Description   string   `json:"description" bson:"description" validate:"required"`
	TechStack     []string `json:"tech_stack" bson:"tech_stack" validate:"required"`
	Category      string   `json:"category" bson:"category" validate:"required,max=200"`
	HeroImage     string   `json:"hero_image" bson:"hero_image" validate:"required,imageurl"`
	GalleryImages []string `json:"gallery_images" bson:"gallery_images" validate:"required,dive,imageurl"`
	VideoURL      *string  `json:"video_url" bson:"video_url" validate:"omitempty,url"`
	Challenge     string   `json:"challenge" bson:"challenge" validate:"required"`
	Solution      string   `json:"solution" bson:"solution" validate:"required"`
	Process       string   `json:"process" bson:"process" validate:"required"`
	Results       string   `json:"results" bson:"results" validate:"required"`
	LiveURL       *string  `json:"live_url" bson:"live_url" validate:"omitempty,url"`
	GitHubURL     *string  `json:"github_url" bson:"github_url" validate:"omitempty,url"`
	Featured      bool     `json:"featured" bson:"featured"`
}

// Project is a portfolio case study.
// ID is generated by the application, not by the store.
type Project struct {
	ID           string `json:"id" bson:"id"`
	ProjectInput `bson:",inline"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
