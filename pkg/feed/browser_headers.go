package feed

import (
	"hash/fnv"
	"net/http"
)

// feedAccept prefers feed formats but still takes html, some publishers serve feeds as text/html
const feedAccept = "application/rss+xml, application/atom+xml;q=0.95, application/xml;q=0.9, text/xml;q=0.8, text/html;q=0.5, */*;q=0.1"

// languages a desktop browser would typically send
var languages = []string{
	"en-US,en;q=0.9",
	"en-US,en;q=0.8",
	"en-GB,en-US;q=0.9,en;q=0.8",
	"en-CA,en-US;q=0.9,en;q=0.8",
}

// setBrowserHeaders makes a feed request look like it comes from a browser. Language is picked by
// host, so repeated fetches of one publisher always send the same one.
func setBrowserHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", feedAccept)
	req.Header.Set("Accept-Language", languageFor(req.URL.Hostname()))
	req.Header.Set("Cache-Control", "no-cache") // stale CDN copies miss fresh bylines
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}

func languageFor(host string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	return languages[h.Sum32()%uint32(len(languages))]
}
