package models

// Exercise is a stress-relief or yoga technique entry.
type Exercise struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	ImageURL    string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}
