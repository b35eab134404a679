package rest

import "time"

type Category struct {
	CategoryID int    `json:"categoryId"`
	Title      string `json:"title"`
}

type Article struct {
	ArticleID            int        `json:"articleId"`
	CategoryID           *int       `json:"categoryId"`
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	Excerpt              string     `json:"excerpt"`
	Content              string     `json:"content"`
	FeaturedImage        string     `json:"featuredImage"`
	MetaTitle            string     `json:"metaTitle"`
	MetaDescription      string     `json:"metaDescription"`
	MetaKeywords         []string   `json:"metaKeywords"`
	Status               string     `json:"status"`
	ScheduledAt          *time.Time `json:"scheduledAt"`
	CurrentVersionNumber int        `json:"currentVersionNumber"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	Category             *Category  `json:"category,omitempty"`
}

type ArticleSummary struct {
	ArticleID     int       `json:"articleId"`
	CategoryID    *int      `json:"categoryId"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featuredImage"`
	CreatedAt     time.Time `json:"createdAt"`
}

type RenderedArticle struct {
	Article
	HTML string `json:"html"`
}

type ArticleVersion struct {
	VersionID     int       `json:"versionId"`
	ArticleID     int       `json:"articleId"`
	VersionNumber int       `json:"versionNumber"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     *string   `json:"createdBy"`
}

type ArticleInput struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featuredImage"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	MetaKeywords    []string   `json:"metaKeywords"`
	CategoryID      *int       `json:"categoryId"`
	Status          string     `json:"status"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
}

// ArticlePatch is the body of an update. Omitted fields keep their current
// value. A categoryId of 0 removes the category.
type ArticlePatch struct {
	Title           *string    `json:"title"`
	Slug            *string    `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Content         *string    `json:"content"`
	FeaturedImage   *string    `json:"featuredImage"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	MetaKeywords    *[]string  `json:"metaKeywords"`
	CategoryID      *int       `json:"categoryId"`
	Status          *string    `json:"status"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	Notes           string     `json:"notes"`
	Author          *string    `json:"author"`
}

type ArticleUpdate struct {
	Article Article        `json:"article"`
	Version ArticleVersion `json:"version"`
}

type RestoreRequest struct {
	Author *string `json:"author"`
}

// RelatedFilter is decoded from the query string with urlstruct.
type RelatedFilter struct {
	Limit int
}

type GenerateRequest struct {
	MainKeyword         string `json:"mainKeyword"`
	SecondaryKeywords   string `json:"secondaryKeywords"`
	CategoryID          *int   `json:"categoryId"`
	TitleInstructions   string `json:"titleInstructions"`
	ContentInstructions string `json:"contentInstructions"`
}

type Draft struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	FeaturedImage   string   `json:"featuredImage"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	MetaKeywords    []string `json:"metaKeywords"`
	CategoryID      *int     `json:"categoryId"`
}

type AssetSlot struct {
	SlotIndex   int    `json:"slotIndex"`
	Query       string `json:"query"`
	ResolvedURL string `json:"resolvedUrl"`
	Fallback    bool   `json:"fallback"`
}

// GenerateResponse reports the wizard state after a generation attempt.
// On failure State is "setup", Error is set and Request echoes the input.
type GenerateResponse struct {
	State     string          `json:"state"`
	RequestID string          `json:"requestId,omitempty"`
	Draft     *Draft          `json:"draft,omitempty"`
	Slots     []AssetSlot     `json:"slots,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
	Error     string          `json:"error,omitempty"`
	Request   GenerateRequest `json:"request"`
}

// GeneratePublishRequest drives the whole wizard in one call. Title, Content
// and FeaturedImage override the generated draft when set. An empty Status
// saves a draft.
type GeneratePublishRequest struct {
	Request       GenerateRequest `json:"request"`
	Title         *string         `json:"title"`
	Content       *string         `json:"content"`
	FeaturedImage *string         `json:"featuredImage"`
	Status        string          `json:"status"`
}

type GeneratePublishResponse struct {
	State     string   `json:"state"`
	RequestID string   `json:"requestId"`
	Article   Article  `json:"article"`
	Warnings  []string `json:"warnings,omitempty"`
}

type PreviewRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featuredImage"`
}

type PreviewResponse struct {
	HTML string `json:"html"`
}
