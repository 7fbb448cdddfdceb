package scoring

import (
	"fmt"
	"strings"

	"github.com/sitegauge/sitegauge/models"
)

// scoreSecurity checks HTTPS usage, security response headers, mixed content
// and inline scripts.
func scoreSecurity(in Input) models.CategoryScore {
	if in.FetchErr != nil {
		return fetchFailure(in.FetchErr)
	}

	score := 100
	issues := []string{}

	isHTTPS := strings.HasPrefix(in.URL, "https://")
	if !isHTTPS {
		issues = append(issues, "Site not using HTTPS")
		score -= 30
	}

	headers := in.Fetch.Headers
	if headers.Get("X-Frame-Options") == "" {
		issues = append(issues, "Missing X-Frame-Options header")
		score -= 10
	}
	if headers.Get("X-Content-Type-Options") == "" {
		issues = append(issues, "Missing X-Content-Type-Options header")
		score -= 10
	}
	if headers.Get("X-XSS-Protection") == "" {
		issues = append(issues, "Missing X-XSS-Protection header")
		score -= 10
	}
	if headers.Get("Strict-Transport-Security") == "" {
		issues = append(issues, "Missing Strict-Transport-Security header")
		score -= 15
	}

	httpResources := in.Doc.Count(`img[src^="http:"], script[src^="http:"], link[href^="http:"]`)
	if httpResources > 0 {
		issues = append(issues, fmt.Sprintf("%d HTTP resources found (mixed content)", httpResources))
		score -= httpResources * 5
	}

	inlineScripts := in.Doc.Count("script:not([src])")
	if inlineScripts > 0 {
		issues = append(issues, fmt.Sprintf("%d inline scripts found", inlineScripts))
		score -= inlineScripts * 2
	}

	return models.CategoryScore{
		Score:  clamp(score),
		Issues: issues,
		Metrics: map[string]any{
			"is_https": isHTTPS,
			"security_headers": map[string]bool{
				"x_frame_options":           headers.Get("X-Frame-Options") != "",
				"x_content_type_options":    headers.Get("X-Content-Type-Options") != "",
				"x_xss_protection":          headers.Get("X-XSS-Protection") != "",
				"strict_transport_security": headers.Get("Strict-Transport-Security") != "",
			},
			"http_resources": httpResources,
			"inline_scripts": inlineScripts,
		},
	}
}
