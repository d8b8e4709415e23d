// Package gitlab reads Cargo manifests from gitlab.com repositories.
//
// Recognized URLs have the form https://gitlab.com/<owner>/<repo> with an
// optional trailing "/" or ".git". The manifest is read from the master branch
// through GitLab's raw endpoint:
//
//	https://gitlab.com/<owner>/<repo>/raw/master/Cargo.toml
package gitlab
