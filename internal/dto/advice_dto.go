package dto

type CreateAdviceArticleRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Author   string `json:"author"`
	ReadTime string `json:"read_time"`
	Image    string `json:"image"`
	Link     string `json:"link"`
}

type UpdateAdviceArticleRequest struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Excerpt  *string `json:"excerpt,omitempty"`
	Author   *string `json:"author,omitempty"`
	ReadTime *string `json:"read_time,omitempty"`
	Image    *string `json:"image,omitempty"`
	Link     *string `json:"link,omitempty"`
}
