package model

import "github.com/Alphiii2005/alphabot-live/platform"

func InstallDB() {
	db := platform.DB
	if err := db.AutoMigrate(
		&User{},
		&Profile{},
		&Message{},
		&RevokedToken{}); err != nil {
		panic(err)
	}
}
