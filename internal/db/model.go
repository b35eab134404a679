// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Article struct {
		ID, CategoryID, Title, Slug, Excerpt, Content, FeaturedImage, MetaTitle, MetaDescription, MetaKeywords, StatusID, ScheduledAt, CurrentVersionNumber, CreatedAt, UpdatedAt string

		Category string
	}
	ArticleVersion struct {
		ID, ArticleID, VersionNumber, Title, Content, Notes, CreatedAt, CreatedBy string
	}
	Category struct {
		ID, Title, OrderNumber, StatusID string
	}
}{
	Article: struct {
		ID, CategoryID, Title, Slug, Excerpt, Content, FeaturedImage, MetaTitle, MetaDescription, MetaKeywords, StatusID, ScheduledAt, CurrentVersionNumber, CreatedAt, UpdatedAt string

		Category string
	}{
		ID:                   "articleId",
		CategoryID:           "categoryId",
		Title:                "title",
		Slug:                 "slug",
		Excerpt:              "excerpt",
		Content:              "content",
		FeaturedImage:        "featuredImage",
		MetaTitle:            "metaTitle",
		MetaDescription:      "metaDescription",
		MetaKeywords:         "metaKeywords",
		StatusID:             "statusId",
		ScheduledAt:          "scheduledAt",
		CurrentVersionNumber: "currentVersionNumber",
		CreatedAt:            "createdAt",
		UpdatedAt:            "updatedAt",

		Category: "Category",
	},
	ArticleVersion: struct {
		ID, ArticleID, VersionNumber, Title, Content, Notes, CreatedAt, CreatedBy string
	}{
		ID:            "articleVersionId",
		ArticleID:     "articleId",
		VersionNumber: "versionNumber",
		Title:         "title",
		Content:       "content",
		Notes:         "notes",
		CreatedAt:     "createdAt",
		CreatedBy:     "createdBy",
	},
	Category: struct {
		ID, Title, OrderNumber, StatusID string
	}{
		ID:          "categoryId",
		Title:       "title",
		OrderNumber: "orderNumber",
		StatusID:    "statusId",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	ArticleVersion struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	ArticleVersion: struct {
		Name, Alias string
	}{
		Name:  "articleVersions",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID                   int        `pg:"articleId,pk"`
	CategoryID           *int       `pg:"categoryId"`
	Title                string     `pg:"title,use_zero"`
	Slug                 string     `pg:"slug,use_zero"`
	Excerpt              string     `pg:"excerpt,use_zero"`
	Content              string     `pg:"content,use_zero"`
	FeaturedImage        string     `pg:"featuredImage,use_zero"`
	MetaTitle            string     `pg:"metaTitle,use_zero"`
	MetaDescription      string     `pg:"metaDescription,use_zero"`
	MetaKeywords         []string   `pg:"metaKeywords,array,use_zero"`
	StatusID             int        `pg:"statusId,use_zero"`
	ScheduledAt          *time.Time `pg:"scheduledAt"`
	CurrentVersionNumber int        `pg:"currentVersionNumber,use_zero"`
	CreatedAt            time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt            time.Time  `pg:"updatedAt,use_zero"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type ArticleVersion struct {
	tableName struct{} `pg:"articleVersions,alias:t,discard_unknown_columns"`

	ID            int       `pg:"articleVersionId,pk"`
	ArticleID     int       `pg:"articleId,use_zero"`
	VersionNumber int       `pg:"versionNumber,use_zero"`
	Title         string    `pg:"title,use_zero"`
	Content       string    `pg:"content,use_zero"`
	Notes         string    `pg:"notes,use_zero"`
	CreatedAt     time.Time `pg:"createdAt,use_zero"`
	CreatedBy     *string   `pg:"createdBy"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int    `pg:"categoryId,pk"`
	Title       string `pg:"title,use_zero"`
	OrderNumber int    `pg:"orderNumber,use_zero"`
	StatusID    int    `pg:"statusId,use_zero"`
}
