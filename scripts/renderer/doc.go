// Package renderer loads embedded Bash templates under
// scripts/renderer/templates/ and renders them with sprig functions.
//
// The scripts run inside managed CodeBuild workers; keeping them as
// separate .tmpl files instead of Go string literals keeps them readable
// and lets the golden tests pin their exact content.
package renderer
