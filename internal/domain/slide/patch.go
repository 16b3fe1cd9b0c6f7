package slide

// Patch carries an edit to the editable fields of a slide.
// Nil fields are left untouched. ID, Kind and Visited are never patched.
type Patch struct {
	Title    *string
	Subtitle *string
	// Content replaces every line when non-nil
	Content []string
	// Lines edits single lines in place, applied after Content.
	// Indices past the end grow the slice with empty lines.
	Lines map[int]string
	Image *string
}

// Empty reports whether the patch changes nothing
func (p Patch) Empty() bool {
	return p.Title == nil && p.Subtitle == nil && p.Content == nil && len(p.Lines) == 0 && p.Image == nil
}

// Apply returns a copy of r with the patch applied
func (p Patch) Apply(r Record) Record {
	out := r.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Subtitle != nil {
		s := *p.Subtitle
		out.Subtitle = &s
	}
	if p.Content != nil {
		out.Content = append([]string(nil), p.Content...)
	}
	for i, text := range p.Lines {
		if i < 0 {
			continue
		}
		for len(out.Content) <= i {
			out.Content = append(out.Content, "")
		}
		out.Content[i] = text
	}
	if p.Image != nil {
		s := *p.Image
		out.Image = &s
	}
	return out
}
