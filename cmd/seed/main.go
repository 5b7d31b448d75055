package main

import (
	"os"

	"github.com/siddur-next/internal/config"
	"github.com/siddur-next/internal/logger"
	"github.com/siddur-next/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	prayers := []models.Prayer{
		{
			Title:           "Modeh Ani",
			Category:        models.CategoryMorning,
			Hebrew:          "מוֹדֶה אֲנִי לְפָנֶיךָ מֶלֶךְ חַי וְקַיָּם, שֶׁהֶחֱזַרְתָּ בִּי נִשְׁמָתִי בְּחֶמְלָה. רַבָּה אֱמוּנָתֶךָ",
			Transliteration: "Modeh ani lefanecha melech chai vekayam, shehechezarta bi nishmati bechemla, raba emunatecha",
			Translation:     "I give thanks before You, living and eternal King, for You have mercifully restored my soul within me; Your faithfulness is great.",
			SortOrder:       1,
			IsActive:        true,
		},
		{
			Title:           "Shema Yisrael",
			Category:        models.CategoryMorning,
			Hebrew:          "שְׁמַע יִשְׂרָאֵל יְהוָה אֱלֹהֵינוּ יְהוָה אֶחָד",
			Transliteration: "Shema Yisrael Adonai Eloheinu Adonai Echad",
			Translation:     "Hear, O Israel: the Lord is our God, the Lord is One.",
			SortOrder:       2,
			IsActive:        true,
		},
		{
			Title:           "Shabbat Candle Lighting",
			Category:        models.CategoryShabbat,
			Hebrew:          "בָּרוּךְ אַתָּה יְיָ אֱלֹהֵינוּ מֶלֶךְ הָעוֹלָם, אֲשֶׁר קִדְּשָׁנוּ בְּמִצְוֹתָיו וְצִוָּנוּ לְהַדְלִיק נֵר שֶׁל שַׁבָּת",
			Transliteration: "Baruch atah Adonai, Eloheinu melech ha'olam, asher kid'shanu b'mitzvotav v'tzivanu l'hadlik ner shel Shabbat",
			Translation:     "Blessed are You, Lord our God, King of the universe, who has sanctified us with His commandments, and commanded us to kindle the Shabbat light.",
			SortOrder:       1,
			IsActive:        true,
		},
		{
			Title:           "Kiddush",
			Category:        models.CategoryShabbat,
			Hebrew:          "בָּרוּךְ אַתָּה יְיָ אֱלֹהֵינוּ מֶלֶךְ הָעוֹלָם, בּוֹרֵא פְּרִי הַגָּפֶן",
			Transliteration: "Baruch atah Adonai, Eloheinu melech ha'olam, borei p'ri hagafen",
			Translation:     "Blessed are You, Lord our God, King of the universe, who creates the fruit of the vine.",
			SortOrder:       2,
			IsActive:        true,
		},
		{
			Title:           "Hamotzi",
			Category:        models.CategoryBlessings,
			Hebrew:          "בָּרוּךְ אַתָּה יְיָ אֱלֹהֵינוּ מֶלֶךְ הָעוֹלָם, הַמּוֹצִיא לֶחֶם מִן הָאָרֶץ",
			Transliteration: "Baruch atah Adonai, Eloheinu melech ha'olam, hamotzi lechem min ha'aretz",
			Translation:     "Blessed are You, Lord our God, King of the universe, who brings forth bread from the earth.",
			SortOrder:       1,
			IsActive:        true,
		},
		{
			Title:           "Bedtime Shema",
			Category:        models.CategoryEvening,
			Hebrew:          "בָּרוּךְ אַתָּה יְיָ אֱלֹהֵינוּ מֶלֶךְ הָעוֹלָם, הַמַּפִּיל חֶבְלֵי שֵׁנָה עַל עֵינַי וּתְנוּמָה עַל עַפְעַפָּי",
			Transliteration: "Baruch atah Adonai, Eloheinu melech ha'olam, hamapil chevlei sheina al einai, utnuma al af'apai",
			Translation:     "Blessed are You, Lord our God, King of the universe, who makes the bonds of sleep fall upon my eyes and slumber upon my eyelids.",
			SortOrder:       1,
			IsActive:        true,
		},
	}

	for _, prayer := range prayers {
		var existing models.Prayer
		err := models.DB.Where("title = ? AND category = ?", prayer.Title, prayer.Category).First(&existing).Error
		if err == nil {
			stdLog.Printf("Prayer already exists: %s", prayer.Title)
			continue
		}
		if err := models.DB.Create(&prayer).Error; err != nil {
			stdLog.Printf("Failed to create prayer %s: %v", prayer.Title, err)
			continue
		}
		stdLog.Printf("Created prayer: %s", prayer.Title)
	}

	videos := []models.Video{
		{
			TitleEN:         "How to Light Shabbat Candles",
			TitleHE:         "איך מדליקים נרות שבת",
			DescriptionEN:   "A short guide to the Friday evening candle lighting ritual.",
			DescriptionHE:   "מדריך קצר לטקס הדלקת נרות בערב שבת.",
			URL:             "https://www.youtube.com/watch?v=shabbat-candles",
			Category:        models.CategoryShabbat,
			DurationSeconds: 240,
			Featured:        true,
			SortOrder:       1,
			IsActive:        true,
		},
		{
			TitleEN:         "The Meaning of the Shema",
			TitleHE:         "משמעות קריאת שמע",
			DescriptionEN:   "Why the Shema is recited morning and evening.",
			DescriptionHE:   "מדוע אומרים קריאת שמע בבוקר ובערב.",
			URL:             "https://www.youtube.com/watch?v=shema-meaning",
			Category:        models.CategoryMorning,
			DurationSeconds: 360,
			SortOrder:       1,
			IsActive:        true,
		},
	}

	for _, video := range videos {
		var existing models.Video
		err := models.DB.Where("title_en = ?", video.TitleEN).First(&existing).Error
		if err == nil {
			stdLog.Printf("Video already exists: %s", video.TitleEN)
			continue
		}
		if err := models.DB.Create(&video).Error; err != nil {
			stdLog.Printf("Failed to create video %s: %v", video.TitleEN, err)
			continue
		}
		stdLog.Printf("Created video: %s", video.TitleEN)
	}

	if err := models.InitDefaultAdmin(os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		stdLog.Printf("Failed to create admin user: %v", err)
	}

	stdLog.Printf("Database seeded successfully")
}
