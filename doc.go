/*
Package installer implements the business intelligence of the workspace
installer and launcher for self-hosted image generation applications.

The project has three main source packages:
`cmd`: Main applications, tools and libraries.
`internal`: Private application and library code.
`pkg`: Library code that's ok to use by external applications
*/
package installer
