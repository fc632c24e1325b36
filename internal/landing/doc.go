// Package landing composes the CloudX landing page from the content catalog
// and the ui primitives. Interactive regions (mobile menu, FAQ list, brand
// marks) also render on their own as htmx fragments.
package landing
