package domain

// Builders from raw entries plus an includes table to the flat view models
// the API returns. All builders follow the same rules: dates become
// yyyy-MM-dd in the source's zone, an absent optional reference becomes nil,
// and a present reference that does not resolve is a resolution error.

// ShapeTag builds a category badge from a blogCategory entry.
func ShapeTag(e Entry) (*Tag, error) {
	f, err := ParseCategoryFields(e)
	if err != nil {
		return nil, err
	}
	return &Tag{
		ID:         e.Sys.ID,
		CategoryID: f.CategoryID,
		Label:      f.CategoryName,
		Color:      f.Color,
	}, nil
}

// ShapeBlogCard builds the list representation of a blog entry.
func ShapeBlogCard(e Entry, inc Includes) (*BlogCard, error) {
	f, err := ParseBlogFields(e)
	if err != nil {
		return nil, err
	}
	card := &BlogCard{
		ID:        e.Sys.ID,
		Title:     f.Title,
		CreatedAt: e.Sys.CreatedAt.Format(DateLayout),
	}
	if f.Category != nil {
		catEntry, err := inc.Entry(f.Category.Sys.ID)
		if err != nil {
			return nil, err
		}
		tag, err := ShapeTag(*catEntry)
		if err != nil {
			return nil, err
		}
		card.Tag = tag
	}
	if f.Thumbnail != nil {
		asset, err := inc.Asset(f.Thumbnail.Sys.ID)
		if err != nil {
			return nil, err
		}
		card.Thumbnail = &asset.Fields.File.URL
	}
	return card, nil
}

// ShapeAuthor resolves an author link into an author view model. A nil link
// means the article has no author; the caller gets nil, not an error.
func ShapeAuthor(link *Link, inc Includes) (*Author, error) {
	if link == nil {
		return nil, nil
	}
	entry, err := inc.Entry(link.Sys.ID)
	if err != nil {
		return nil, err
	}
	f, err := ParseAuthorFields(*entry)
	if err != nil {
		return nil, err
	}
	author := &Author{
		ID:          entry.Sys.ID,
		Name:        f.Name,
		Description: f.Description,
	}
	if f.Avatar != nil {
		asset, err := inc.Asset(f.Avatar.Sys.ID)
		if err != nil {
			return nil, err
		}
		author.Avatar = &asset.Fields.File.URL
	}
	return author, nil
}

// ShapeNewsItem builds a news feed row.
func ShapeNewsItem(e Entry, inc Includes) (*NewsItem, error) {
	f, err := ParseNewsFields(e)
	if err != nil {
		return nil, err
	}
	item := &NewsItem{
		ID:   e.Sys.ID,
		Text: f.Text,
		Date: f.Date,
	}
	if f.Image != nil {
		asset, err := inc.Asset(f.Image.Sys.ID)
		if err != nil {
			return nil, err
		}
		item.Image = &NewsImage{
			URL: asset.Fields.File.URL,
			Alt: asset.Fields.Title,
		}
	}
	return item, nil
}

// ShapePortfolioWork builds a portfolio item. Link and GitHub are plain
// optional strings in the source; empty means absent.
func ShapePortfolioWork(e Entry, inc Includes) (*PortfolioWork, error) {
	f, err := ParsePortfolioFields(e)
	if err != nil {
		return nil, err
	}
	work := &PortfolioWork{
		Title:       f.Title,
		Description: f.Description,
		Year:        f.CreatedYear,
	}
	if f.Link != "" {
		work.Link = &f.Link
	}
	if f.GitHub != "" {
		work.GitHub = &f.GitHub
	}
	if f.Image != nil {
		asset, err := inc.Asset(f.Image.Sys.ID)
		if err != nil {
			return nil, err
		}
		work.Image = &asset.Fields.File.URL
	}
	return work, nil
}

// ShapeRoadmap groups roadmap entries by their first state. Entries with an
// unrecognized or empty state are dropped, matching the source's behavior.
func ShapeRoadmap(entries []Entry) (*Roadmap, error) {
	roadmap := &Roadmap{
		Schedule: make([]RoadmapItem, 0),
		Develop:  make([]RoadmapItem, 0),
		Merge:    make([]RoadmapItem, 0),
	}
	for _, e := range entries {
		f, err := ParseRoadmapFields(e)
		if err != nil {
			return nil, err
		}
		if len(f.State) == 0 {
			continue
		}
		item := RoadmapItem{Label: f.Content, Completed: f.Completed}
		switch f.State[0] {
		case RoadmapStateSchedule:
			roadmap.Schedule = append(roadmap.Schedule, item)
		case RoadmapStateDevelop:
			roadmap.Develop = append(roadmap.Develop, item)
		case RoadmapStateMerge:
			roadmap.Merge = append(roadmap.Merge, item)
		}
	}
	return roadmap, nil
}
