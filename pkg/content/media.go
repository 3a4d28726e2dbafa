package content

import "strings"

// MediaURL returns the public URL of a media file: the base URL without its API
// suffix, followed by /media/{filename}. filename is used verbatim.
func (c *Client) MediaURL(filename string) string {
	return MediaURL(c.baseURL, c.apiPath, filename)
}

// MediaURL is the pure form of (*Client).MediaURL.
func MediaURL(baseURL, apiPath, filename string) string {
	root := strings.TrimRight(baseURL, "/")
	if apiPath != "" {
		root = strings.TrimSuffix(root, strings.TrimRight(apiPath, "/"))
	}
	return root + mediaPath + filename
}
