// Package dto defines data transfer objects for the headline RSS feed.
package dto

import "encoding/xml"

// RSSFeed represents the subset of an RSS 2.0 document the service reads:
// the item titles, in document order.
type RSSFeed struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}
