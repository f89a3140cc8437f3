/*
Package sheetfeed turns a language-access request spreadsheet into the static JSON feeds consumed by the website.

sheetfeed can be used from the command line but is really intended to be run from a cron job to keep the published
translations.json and interpretation.json files in sync with the 'Translations' and 'Interpretation' worksheets.

sheetfeed supports the following commands:

  - build, to fetch the worksheets (or a local .xlsx copy) and write the JSON feeds
  - version, to display the current version
*/
package sheetfeed
