package dto

// CollectionURI binds the collection path segment.
type CollectionURI struct {
	Collection string `uri:"collection" binding:"required,max=128"`
}

// DocumentURI binds the collection and document id path segments.
type DocumentURI struct {
	Collection string `uri:"collection" binding:"required,max=128"`
	ID         string `uri:"id" binding:"required,max=256"`
}

// MediaURI binds the media filename path segment.
type MediaURI struct {
	Filename string `uri:"filename" binding:"required,max=512"`
}

// MediaQuery selects the media response format.
type MediaQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=json redirect"`
}
