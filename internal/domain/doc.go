// Package domain contains the core entities of the application:
// questions, evaluation results, mistake records, and user settings.
package domain
