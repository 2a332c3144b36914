package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minho-song/kitdex/internal/catalog"
	"github.com/minho-song/kitdex/internal/session"
)

func (s *Server) registerHandlers() {
	s.handlers["search_kits"] = s.handleSearchKits
	s.handlers["get_kit"] = s.handleGetKit
	s.handlers["list_categories"] = s.handleListCategories
	s.handlers["get_favorites"] = s.handleGetFavorites
}

type searchKitsParams struct {
	Query string `json:"query"`
	State string `json:"state"`
	Limit int    `json:"limit"`
}

func (s *Server) handleSearchKits(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p searchKitsParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	s.session.Reset()
	if p.State != "" {
		if err := s.session.Restore(p.State); err != nil {
			return nil, fmt.Errorf("invalid state string: %w", err)
		}
	}
	if p.Query != "" {
		s.session.SetQuery(p.Query)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	page := s.session.Results(session.Options{PerPage: limit})
	return page, nil
}

type getKitParams struct {
	ID string `json:"id"`
}

func (s *Server) handleGetKit(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p getKitParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if p.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	entry := catalog.FindProduct(s.products, p.ID)
	if entry == nil {
		return nil, fmt.Errorf("kit not found: %s", p.ID)
	}

	return catalog.LoadDetail(s.config.Data.DetailsDir, entry), nil
}

func (s *Server) handleListCategories(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.taxonomy.Categories, nil
}

type favoriteKit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Grade string `json:"grade,omitempty"`
}

func (s *Server) handleGetFavorites(ctx context.Context, params json.RawMessage) (interface{}, error) {
	favorites, err := s.db.ListFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("store error: %w", err)
	}

	kits := make([]favoriteKit, 0, len(favorites))
	for _, f := range favorites {
		kit := favoriteKit{ID: f.ProductID, Name: f.ProductID}
		if p := catalog.FindProduct(s.products, f.ProductID); p != nil {
			kit.Name = p.Name(s.config.Catalog.Locale)
			kit.Grade = p.Grade
		}
		kits = append(kits, kit)
	}

	return kits, nil
}
