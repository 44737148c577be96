// Package branding holds the product identity shown in every document head.
package branding

// AppName is the product name used as the document title.
const AppName = "Budget Management"

// Description summarizes the product for the document description meta tag.
const Description = "Application de gestion de budget personnel et partagé"
