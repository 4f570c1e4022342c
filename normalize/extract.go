package normalize

import "strings"

// urlFields is the fixed allow-list of object keys the extractor follows.
// Traversal is deliberately not unrestricted: walking every key produces
// false positives from metadata blobs such as captions containing URLs.
var urlFields = [...]string{"url", "download_url", "downloadUrl", "video", "audio", "mp4", "mp3", "hd", "sd"}

// maxExtractDepth bounds traversal. Decoded JSON cannot cycle, so a depth
// bound is sufficient to guarantee termination on any input.
const maxExtractDepth = 32

// ExtractURLs collects candidate download URLs from an arbitrary decoded JSON
// tree. It is the heuristic fallback for platforms without a dedicated
// normalizer and must never be used when one exists.
//
// A string is collected iff it starts with http:// or https://, has not been
// collected before, and does not contain the substrings "thumbnail" or
// "cover" (preview-image exclusion). Results preserve first-encounter order.
func ExtractURLs(node any) []string {
	type frame struct {
		node  any
		depth int
	}

	// Explicit work-stack instead of recursion; children are pushed in
	// reverse so traversal order matches a depth-first left-to-right walk.
	stack := []frame{{node: node}}
	seen := make(map[string]struct{})
	var urls []string

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > maxExtractDepth {
			continue
		}

		switch n := top.node.(type) {
		case string:
			if !strings.HasPrefix(n, "http://") && !strings.HasPrefix(n, "https://") {
				continue
			}
			if strings.Contains(n, "thumbnail") || strings.Contains(n, "cover") {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			urls = append(urls, n)

		case []any:
			for i := len(n) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: n[i], depth: top.depth + 1})
			}

		case map[string]any:
			for i := len(urlFields) - 1; i >= 0; i-- {
				if child, ok := n[urlFields[i]]; ok && child != nil {
					stack = append(stack, frame{node: child, depth: top.depth + 1})
				}
			}
		}
	}

	return urls
}
