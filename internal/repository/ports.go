package repository

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage github.com/FlamesIsCool/tagz-bio/internal/db.Storage
