// Dispatch and schema for ArticleService, laid out the way zenrpc generates
// them. Keep in sync with the method signatures in articles.go by hand.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	ArticleService struct{ Create, Update, Get, Delete, Versions, Version, Restore, Related, Generate, Preview, Categories string }
}{
	ArticleService: struct{ Create, Update, Get, Delete, Versions, Version, Restore, Related, Generate, Preview, Categories string }{
		Create:     "create",
		Update:     "update",
		Get:        "get",
		Delete:     "delete",
		Versions:   "versions",
		Version:    "version",
		Restore:    "restore",
		Related:    "related",
		Generate:   "generate",
		Preview:    "preview",
		Categories: "categories",
	},
}

func (ArticleService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Description: `ArticleService provides RPC methods for articles, their versions and generation.`,
		Methods: map[string]smd.Service{
			"Create": {
				Description: `Create persists a new article. No version is recorded on create.`,
				Parameters: []smd.JSONSchema{
					{Name: "article", Description: `article fields`, Type: smd.Object},
				},
				Returns: smd.JSONSchema{Description: `created article`, Type: smd.Object},
				Errors: map[int]string{
					400: "invalid article",
					409: "slug already in use",
					500: "internal server error",
				},
			},
			"Update": {
				Description: `Update merges the given fields onto the article and records the version it produced.`,
				Parameters: []smd.JSONSchema{
					{Name: "id", Description: `article numeric ID`, Type: smd.Integer},
					{Name: "article", Description: `changed fields, omitted ones are kept`, Type: smd.Object},
				},
				Returns: smd.JSONSchema{Description: `updated article and its new version`, Type: smd.Object},
				Errors: map[int]string{
					400: "invalid article",
					404: "article not found",
					409: "slug already in use",
					500: "internal server error",
				},
			},
			"Get": {
				Description: `Get retrieves an article with its normalized display HTML.`,
				Parameters: []smd.JSONSchema{
					{Name: "id", Description: `article numeric ID`, Type: smd.Integer},
				},
				Returns: smd.JSONSchema{Description: `article with html`, Optional: true, Type: smd.Object},
				Errors: map[int]string{
					400: "id must be positive",
					404: "article not found",
					500: "internal server error",
				},
			},
			"Delete": {
				Description: `Delete removes an article together with its versions.`,
				Parameters: []smd.JSONSchema{
					{Name: "id", Description: `article numeric ID`, Type: smd.Integer},
				},
				Returns: smd.JSONSchema{Description: `true on success`, Type: smd.Boolean},
				Errors: map[int]string{
					400: "id must be positive",
					404: "article not found",
					500: "internal server error",
				},
			},
			"Versions": {
				Description: `Versions lists article versions, newest first.`,
				Parameters: []smd.JSONSchema{
					{Name: "id", Description: `article numeric ID`, Type: smd.Integer},
				},
				Returns: smd.JSONSchema{Description: `list of versions`, Optional: true, Type: smd.Array},
				Errors: map[int]string{
					404: "article not found",
					500: "internal server error",
				},
			},
			"Version": {
				Description: `Version retrieves a single version of the article.`,
				Parameters: []smd.JSONSchema{
					{Name: "id", Description: `article numeric ID`, Type: smd.Integer},
					{Name: "versionId", Description: `version numeric ID`, Type: smd.Integer},
				},
				Returns: smd.JSONSchema{Description: `version`, Optional: true, Type: smd.Object},
				Errors: map[int]string{
					404: "version not found",
					500: "internal server error",
				},
			},
			"Restore": {
				Description: `Restore copies title and content of a version back into the article and records a new version.`,
				Parameters: []smd.JSONSchema{
					{Name: "id", Description: `article numeric ID`, Type: smd.Integer},
					{Name: "versionId", Description: `version numeric ID`, Type: smd.Integer},
					{Name: "author", Description: `optional author of the restore`, Optional: true, Type: smd.String},
				},
				Returns: smd.JSONSchema{Description: `restored article and its new version`, Optional: true, Type: smd.Object},
				Errors: map[int]string{
					404: "article or version not found",
					500: "internal server error",
				},
			},
			"Related": {
				Description: `Related lists published articles of the same category, newest first.`,
				Parameters: []smd.JSONSchema{
					{Name: "id", Description: `article numeric ID`, Type: smd.Integer},
					{Name: "limit", Description: `max items, capped at 12`, Optional: true, Type: smd.Integer},
				},
				Returns: smd.JSONSchema{Description: `list of article summaries`, Optional: true, Type: smd.Array},
				Errors: map[int]string{
					404: "article not found",
					500: "internal server error",
				},
			},
			"Generate": {
				Description: `Generate produces an article draft with resolved images.`,
				Parameters: []smd.JSONSchema{
					{Name: "req", Description: `generation request`, Type: smd.Object},
				},
				Returns: smd.JSONSchema{Description: `generated draft`, Optional: true, Type: smd.Object},
				Errors: map[int]string{
					400: "invalid request",
					502: "generated article is incomplete",
					503: "generation service unavailable",
					500: "internal server error",
				},
			},
			"Preview": {
				Description: `Preview normalizes unsaved markup the way a saved article is rendered.`,
				Parameters: []smd.JSONSchema{
					{Name: "req", Description: `markup to render`, Type: smd.Object},
				},
				Returns: smd.JSONSchema{Description: `display html`, Type: smd.String},
			},
			"Categories": {
				Description: `Categories retrieves all categories ordered by orderNumber.`,
				Parameters:  []smd.JSONSchema{},
				Returns:     smd.JSONSchema{Description: `list of categories`, Optional: true, Type: smd.Array},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke decodes params by name or position and calls the matching method.
func (s ArticleService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.ArticleService.Create:
		var args = struct {
			Article ArticleInput `json:"article"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"article"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Create(ctx, args.Article))

	case RPC.ArticleService.Update:
		var args = struct {
			Id      int          `json:"id"`
			Article ArticlePatch `json:"article"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id", "article"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Update(ctx, args.Id, args.Article))

	case RPC.ArticleService.Get:
		var args = struct {
			Id int `json:"id"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Get(ctx, args.Id))

	case RPC.ArticleService.Delete:
		var args = struct {
			Id int `json:"id"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Delete(ctx, args.Id))

	case RPC.ArticleService.Versions:
		var args = struct {
			Id int `json:"id"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Versions(ctx, args.Id))

	case RPC.ArticleService.Version:
		var args = struct {
			Id        int `json:"id"`
			VersionId int `json:"versionId"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id", "versionId"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Version(ctx, args.Id, args.VersionId))

	case RPC.ArticleService.Restore:
		var args = struct {
			Id        int     `json:"id"`
			VersionId int     `json:"versionId"`
			Author    *string `json:"author"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id", "versionId", "author"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Restore(ctx, args.Id, args.VersionId, args.Author))

	case RPC.ArticleService.Related:
		var args = struct {
			Id    int  `json:"id"`
			Limit *int `json:"limit"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id", "limit"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		//zenrpc:limit=3
		if args.Limit == nil {
			var v int = 3
			args.Limit = &v
		}

		resp.Set(s.Related(ctx, args.Id, args.Limit))

	case RPC.ArticleService.Generate:
		var args = struct {
			Req GenerateRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Generate(ctx, args.Req))

	case RPC.ArticleService.Preview:
		var args = struct {
			Req PreviewRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Preview(args.Req))

	case RPC.ArticleService.Categories:
		resp.Set(s.Categories(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
